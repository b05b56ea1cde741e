package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/itchyny/gojq"
	"go.yaml.in/yaml/v3"

	"github.com/pysyun/etherscan-transfers/internal/transfer"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrJQ            = errors.New("jq expression failed")
)

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFormat, format, formatJSON, formatYAML)
	}
}

// render writes tl to w in format. With a jq expression every value the
// expression yields is written instead, one document per value.
func render(ctx context.Context, w io.Writer, tl transfer.Timeline, format, expr string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	values := []any{tl}
	if expr != "" {
		var err error
		if values, err = runJQ(ctx, expr, generic(tl)); err != nil {
			return err
		}
	}

	for _, v := range values {
		var err error
		switch format {
		case formatYAML:
			err = writeYAML(w, v)
		default:
			err = writeJSON(w, v)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func runJQ(ctx context.Context, expr string, input any) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJQ, err)
	}

	var out []any
	iter := query.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrJQ, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// generic converts tl into the value types gojq operates on. Amounts stay
// arbitrary precision.
func generic(tl transfer.Timeline) []any {
	out := make([]any, 0, len(tl))
	for _, entry := range tl {
		var amount any = 0
		if entry.Value.Amount != nil {
			amount = new(big.Int).Set(entry.Value.Amount)
		}

		out = append(out, map[string]any{
			"time": int(entry.Time),
			"value": map[string]any{
				"from":   entry.Value.From,
				"to":     entry.Value.To,
				"amount": amount,
			},
		})
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// writeYAML goes through JSON so that amounts keep their exact digits.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}

	return enc.Close()
}

// blockStyle drops the flow style inherited from the JSON source.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, child := range n.Content {
		blockStyle(child)
	}
}
