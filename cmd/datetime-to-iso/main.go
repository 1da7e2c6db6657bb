// datetime-to-iso - rewrite datetime.datetime(...) literals as ISO-8601.
package main

import (
	"os"

	"github.com/ccollicutt/linetools/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteDatetimeToISO())
}
