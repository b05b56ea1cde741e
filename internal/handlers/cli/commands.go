package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pysyun/etherscan-transfers/internal/infra/explorer/etherscan"
	"github.com/pysyun/etherscan-transfers/internal/timeline"

	"github.com/urfave/cli/v3"
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "format",
			Usage:     "Output format: json or yaml",
			Value:     formatJSON,
			Validator: validateFormat,
		},
		&cli.StringFlag{
			Name:  "jq",
			Usage: "jq expression applied to the timeline before printing (e.g. '.[].value.amount')",
		},
	}
}

// timelineCommand returns a CLI command that fetches the history of an
// address and prints its transfer timeline.
//
// Usage example:
//
//	etherscan-transfers timeline --address 0xABC123... --sort asc --max-pages 5
func timelineCommand(svc timeline.Service) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "address",
			Usage:    "Account whose transactions are fetched",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "start-block",
			Usage: "First block of the range",
			Value: timeline.DefaultStartBlock,
		},
		&cli.Uint64Flag{
			Name:  "end-block",
			Usage: "Last block of the range",
			Value: timeline.DefaultEndBlock,
		},
		&cli.IntFlag{
			Name:  "page",
			Usage: "First page to request",
			Value: timeline.DefaultPage,
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "Records per page (at most 10000)",
			Value: timeline.DefaultOffset,
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Explorer sort order: asc or desc",
			Value: timeline.DefaultSort,
		},
		&cli.IntFlag{
			Name:  "max-pages",
			Usage: "Maximum number of pages to request, 0 keeps the configured limit",
		},
	}

	return &cli.Command{
		Name:        "timeline",
		Description: "Fetch the transaction history of an address and print the ERC-20 transfers it made, oldest first.",
		Usage:       "Prints the transfer timeline of an address.",
		Flags:       append(flags, outputFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			q := timeline.DefaultQuery(c.String("address"))
			q.StartBlock = c.Uint64("start-block")
			q.EndBlock = c.Uint64("end-block")
			q.Page = c.Int("page")
			q.Offset = c.Int("offset")
			q.Sort = c.String("sort")
			q.Pages = c.Int("max-pages")

			tl, err := svc.Build(ctx, q)
			if err != nil {
				return err
			}

			return render(ctx, c.Root().Writer, tl, c.String("format"), c.String("jq"))
		},
	}
}

// decodeCommand returns a CLI command that builds the timeline of a saved
// transaction list. The input is either a JSON array of txlist entries or a
// complete explorer response.
//
// Usage example:
//
//	etherscan-transfers decode --input txlist.json --format yaml
func decodeCommand(svc timeline.Service) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Usage:    "File holding the transaction list, - for standard input",
			Required: true,
		},
	}

	return &cli.Command{
		Name:        "decode",
		Description: "Build the transfer timeline of a transaction list saved to a file, without contacting the explorer.",
		Usage:       "Prints the transfer timeline of a saved transaction list.",
		Flags:       append(flags, outputFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := readInput(c.Root().Reader, c.String("input"))
			if err != nil {
				return err
			}

			records, err := etherscan.DecodeTransactions(data)
			if err != nil {
				return err
			}

			tl := svc.Process(ctx, records)
			return render(ctx, c.Root().Writer, tl, c.String("format"), c.String("jq"))
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}
