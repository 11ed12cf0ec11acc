package cmd

import "streamc/report"

// demoSource is the embedded sample program.  It deliberately contains
// structural errors (an unterminated file operation among them) so that the
// demo exercises the checker's diagnostics.
const demoSource = `int a;
int b,c;
ifstream inputFile("input.txt");
for (i; i; i)
{
    inputFile.read();
}

while (i)
{
    outputFile.write();
}

if (!done)
{
    inputFile.close();
}

inputFile.close(;
outputFile.close();
`

// execDemoCommand checks the embedded sample program with the token dump
// enabled.
func execDemoCommand() int {
	report.InitReporter(report.LogLevelVerbose)
	return checkSource("demo", demoSource, true)
}
