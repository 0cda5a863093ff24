package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/admin"
	"github.com/zhulik/ccpadmin/internal/core"
)

func decisionsCMD() *cli.Command {
	return &cli.Command{
		Name:     "decisions",
		Usage:    "List decisions awaiting user input.",
		Category: "Decisions",
		Action: clientAction(func(ctx context.Context, _ *cli.Command, client *admin.Client) (any, error) {
			return client.ListAwaitingDecisions(ctx, &admin.ListAwaitingDecisionsRequest{}) //nolint:wrapcheck
		}),
	}
}

func resolveCMD() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve an awaiting decision.",
		ArgsUsage: "<decision-id> <choice-id>",
		Category:  "Decisions",
		Action: clientAction(func(ctx context.Context, cmd *cli.Command, client *admin.Client) (any, error) {
			if cmd.NArg() != 2 { //nolint:mnd
				return nil, fmt.Errorf("%w: expected a decision id and a choice id", core.ErrInvalidRequest)
			}

			choice, err := strconv.ParseInt(cmd.Args().Get(1), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid choice id %q", core.ErrInvalidRequest, cmd.Args().Get(1))
			}

			return client.ResolveAwaitingDecision(ctx, &admin.ResolveAwaitingDecisionRequest{ //nolint:wrapcheck
				ID:       cmd.Args().First(),
				ChoiceID: int32(choice),
			})
		}),
	}
}
