package cmd

import (
	"os"

	"streamc/report"

	"github.com/ComedicChimera/olive"
)

// streamcVersion is the current version string of the checker.
const streamcVersion = "streamc 0.1.0"

// Run runs the main `streamc` application and returns its exit code.  This
// should be called directly from main.
func Run() int {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("streamc", "streamc is a syntax checker for the stream dialect", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the reporter log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "tokenize and parse a source file", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the source file to check", true)
	checkCmd.AddFlag("dump-tokens", "dt", "print the token listing before parsing")

	cli.AddSubcommand("demo", "check the embedded sample program", false)
	cli.AddSubcommand("version", "print the streamc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportStdError("CLI Usage Error", err)
		return 1
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		return execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "demo":
		return execDemoCommand()
	case "version":
		report.InitReporter(report.LogLevelVerbose)
		report.ReportInfo("Version", streamcVersion)
	}

	return 0
}

// logLevelByName maps profile and CLI log level names to reporter log levels.
var logLevelByName = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}
