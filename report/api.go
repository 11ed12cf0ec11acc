package report

import (
	"fmt"
	"os"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  Report functions below their log level simply fail silently.

// ReportSyntaxError reports a structural error produced while checking source
// text.  The reprPath is the representative path of the checked source and
// src is the source text itself, used to display the offending line.  Errors
// which are not syntax errors are displayed without positional information.
func ReportSyntaxError(reprPath, src string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		if serr, ok := err.(*SyntaxError); ok {
			displaySyntaxError(reprPath, src, serr)
		} else {
			displayErrorMessage("Error", fmt.Sprintf("%s: %s", reprPath, err))
		}
	}
}

// ReportStdError reports a non-fatal, standard Go error such as a failure to
// read an input file.
func ReportStdError(tag string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayErrorMessage(tag, err.Error())
	}
}

// ReportWarning reports a tagged warning message.
func ReportWarning(tag, msg string) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarningMessage(tag, msg)
	}
}

// ReportInfo reports a tagged informational message.
func ReportInfo(tag, msg string) {
	if rep.logLevel > LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfoMessage(tag, msg)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are
// expected errors that generally result from invalid configuration: a bad log
// level in a profile, an unusable input path, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep == nil || rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}
