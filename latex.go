package latexlearn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	openers = map[rune]rune{'{': '}', '(': ')', '[': ']'}
	closers = map[rune]rune{'}': '{', ')': '(', ']': '['}
)

// ValidateLaTeX checks that brackets, braces, and parentheses in s nest
// correctly and that s is not empty. Positions in error messages are
// character offsets. Rendering itself is delegated to the display surface;
// this is only the balance check shared by the compiler and teacher pages.
func ValidateLaTeX(s string) error {
	var stack []rune

	for i, ch := range []rune(s) {
		if _, ok := openers[ch]; ok {
			stack = append(stack, ch)
			continue
		}
		opener, ok := closers[ch]
		if !ok {
			continue
		}
		if len(stack) == 0 {
			return fmt.Errorf("unmatched closing bracket/brace at position %d", i)
		}
		last := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if last != opener {
			return fmt.Errorf("mismatched brackets/braces at position %d", i)
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("unmatched opening bracket/brace: %c", stack[len(stack)-1])
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("input is empty")
	}
	return nil
}
