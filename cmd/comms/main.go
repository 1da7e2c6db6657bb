// comms - comm(1) for a single input.
//
// comms splits standard input into two blank-line separated sections and
// prints the lines unique to each section and the lines common to both.
package main

import (
	"os"

	"github.com/ccollicutt/linetools/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteComms())
}
