package latexlearn_test

import (
	"testing"

	"latexlearn"
)

func TestStripLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A) 1", "1"},
		{"b. second", "second"},
		{"C: third", "third"},
		{"d - fourth", "fourth"},
		{"  A)   spaced  ", "spaced"},
		{`B) \frac{a}{b}`, `\frac{a}{b}`},
		{"no label here", "no label here"},
		{"Apple", "Apple"},   // letter without separator is not a label
		{"E) five", "E) five"}, // E is outside the label alphabet
		{"%", "%"},
		{"  trimmed  ", "trimmed"},
	}

	for _, c := range cases {
		if got := latexlearn.StripLabel(c.in); got != c.want {
			t.Errorf("StripLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripLabelLeavesInteriorContent(t *testing.T) {
	in := "A) keep A) this B. intact"
	want := "keep A) this B. intact"
	if got := latexlearn.StripLabel(in); got != want {
		t.Errorf("StripLabel(%q) = %q, want %q", in, got, want)
	}
}

func TestCanonicalize(t *testing.T) {
	if latexlearn.Canonicalize("  A  B ") != latexlearn.Canonicalize("A B") {
		t.Error("Canonicalize should be whitespace-insensitive")
	}
	if latexlearn.Canonicalize("A") == latexlearn.Canonicalize("a") {
		t.Error("Canonicalize must preserve case")
	}
	if got := latexlearn.Canonicalize("\t\\sum_{i=1}^n \n i^2  "); got != `\sum_{i=1}^n i^2` {
		t.Errorf("Canonicalize = %q, want %q", got, `\sum_{i=1}^n i^2`)
	}
	if got := latexlearn.Canonicalize(""); got != "" {
		t.Errorf("Canonicalize(\"\") = %q, want empty", got)
	}
}

func TestLetterIndex(t *testing.T) {
	valid := []struct {
		in   string
		want int
	}{
		{"A", 0},
		{"a", 0},
		{"B)", 1},
		{"c.", 2},
		{"D:", 3},
		{" d - ", 3},
		{"  B  ", 1},
	}
	for _, c := range valid {
		got, ok := latexlearn.LetterIndex(c.in)
		if !ok {
			t.Errorf("LetterIndex(%q) not recognized, want %d", c.in, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("LetterIndex(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	invalid := []string{
		"",
		"E",
		"AB",
		"A) full sentence",
		`\alpha`,
		"1",
		"A )x",
	}
	for _, in := range invalid {
		if idx, ok := latexlearn.LetterIndex(in); ok {
			t.Errorf("LetterIndex(%q) = %d, want no match", in, idx)
		}
	}
}
