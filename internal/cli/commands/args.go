package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ccollicutt/linetools/pkg/comm"
)

// flagToken matches one or more combined comms flags, e.g. -12i.
var flagToken = regexp.MustCompile(`^-[123i]+$`)

// CommsArgs is the parsed comms command line.
type CommsArgs struct {
	Options comm.Options
	Help    bool
}

// ArgumentError reports an unrecognised command-line token.
type ArgumentError struct {
	Arg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Bad argument: %s", e.Arg)
}

// ParseCommsArgs reads tokens left to right. -h or --help ends parsing
// immediately, so tokens after it are never checked.
func ParseCommsArgs(args []string) (*CommsArgs, error) {
	parsed := &CommsArgs{}

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			parsed.Help = true
			return parsed, nil
		case flagToken.MatchString(arg):
			if strings.Contains(arg, "1") {
				parsed.Options.SuppressFirst = true
			}
			if strings.Contains(arg, "2") {
				parsed.Options.SuppressSecond = true
			}
			if strings.Contains(arg, "3") {
				parsed.Options.SuppressCommon = true
			}
			if strings.Contains(arg, "i") {
				parsed.Options.IgnoreCase = true
			}
		default:
			return nil, &ArgumentError{Arg: arg}
		}
	}

	return parsed, nil
}
