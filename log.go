package latexlearn

import "log"

var verboseMode bool

// SetVerbose toggles debug logging for the whole package. Shells wire it to
// their -verbose flag or the VERBOSE env var.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// VerboseLog writes a debug line when verbose mode is on.
func VerboseLog(format string, v ...interface{}) {
	if verboseMode {
		log.Printf(format, v...)
	}
}
