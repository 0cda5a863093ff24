package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/admin"
	"github.com/zhulik/ccpadmin/internal/codec"
	"github.com/zhulik/ccpadmin/internal/core"
)

func callCMD() *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "Call any admin service method with a raw JSON message.",
		ArgsUsage: "<Method> [json]",
		Category:  "Utility",
		Action: clientAction(func(ctx context.Context, cmd *cli.Command, client *admin.Client) (any, error) {
			if cmd.NArg() < 1 || cmd.NArg() > 2 {
				return nil, fmt.Errorf("%w: expected a method name and an optional JSON message", core.ErrInvalidRequest)
			}

			var in codec.RawMessage

			if raw := cmd.Args().Get(1); raw != "" {
				if !codec.Valid([]byte(raw)) {
					return nil, fmt.Errorf("%w: message is not valid JSON", core.ErrInvalidRequest)
				}

				in = codec.RawMessage(raw)
			}

			var out codec.RawMessage

			err := client.Call(ctx, cmd.Args().First(), in, &out)
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			return out, nil
		}),
	}
}
