package cmd

import (
	"io/ioutil"
	"path/filepath"

	"streamc/mods"
	"streamc/report"
	"streamc/syntax"

	"github.com/ComedicChimera/olive"
)

// execCheckCommand executes the check subcommand: it loads the optional
// project profile, runs the lexer and parser over the given source file, and
// reports the result.  It handles all errors related to this command.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) int {
	fileRelPath, _ := result.PrimaryArg()

	filePath, err := filepath.Abs(fileRelPath)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportStdError("Path Error", err)
		return 1
	}

	// the profile file, if any, sits next to the checked source file
	prof, err := mods.LoadProfile(filepath.Dir(filePath))
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportStdError("Profile Error", err)
		return 1
	}

	// the profile log level applies unless the command line narrows it
	if loglevel == "verbose" && prof.LogLevel != "" {
		loglevel = prof.LogLevel
	}
	report.InitReporter(logLevelByName[loglevel])

	buff, err := ioutil.ReadFile(filePath)
	if err != nil {
		report.ReportStdError("File Error", err)
		return 1
	}

	dumpTokens := prof.DumpTokens || result.HasFlag("dump-tokens")
	return checkSource(filepath.Base(filePath), string(buff), dumpTokens)
}

// checkSource runs the full lexer-to-parser pipeline over in-memory source
// text and reports the outcome.  It returns the exit code of the check.
func checkSource(reprPath, src string, dumpTokens bool) int {
	tokens := syntax.Tokenize(src)

	if dumpTokens {
		displayTokens(tokens)
	}

	if _, err := syntax.Parse(tokens); err != nil {
		report.ReportSyntaxError(reprPath, src, err)
		return 1
	}

	report.ReportInfo("Check", "Parsing completed successfully.")
	return 0
}
