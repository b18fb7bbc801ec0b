package commands

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"
)

// newTestApp returns a root command writing to w. Exit errors are returned
// from Run instead of ending the test binary.
func newTestApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:           "drawer",
		Writer:         w,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}
