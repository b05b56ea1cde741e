package cli

import (
	"context"
	"io"
	"os"

	"github.com/pysyun/etherscan-transfers/internal/timeline"

	"github.com/urfave/cli/v3"
)

// newApp assembles the command tree. Results are written to w.
func newApp(svc timeline.Service, r io.Reader, w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "etherscan-transfers",
		Description:           "Builds the chronological ERC-20 transfer timeline of an address from its transaction history.",
		Usage:                 "etherscan-transfers [command] [flags]",
		Reader:                r,
		Writer:                w,
		Commands: []*cli.Command{
			timelineCommand(svc),
			decodeCommand(svc),
		},
	}
}

// Run initializes and executes the etherscan-transfers CLI application.
//
// It registers all available commands, including:
//
//   - `timeline`: Fetches an address history from the explorer and prints its transfer timeline.
//   - `decode`: Builds the timeline of a transaction list saved to a file, without network access.
func Run(ctx context.Context, svc timeline.Service) error {
	return newApp(svc, os.Stdin, os.Stdout).Run(ctx, os.Args)
}
