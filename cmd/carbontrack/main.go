// Command carbontrack estimates carbon emissions for real-world activities
// and maintains a multi-user emissions ledger.
package main

import (
	"os"

	"github.com/tiro27cbs/carbontrack/internal/cli"
	"github.com/tiro27cbs/carbontrack/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to a process exit
// code. Cobra has already printed the error by the time Execute returns.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
