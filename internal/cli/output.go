package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/admin"
	"github.com/zhulik/ccpadmin/internal/app"
	"github.com/zhulik/ccpadmin/internal/codec"
)

// clientAction resolves the admin client and prints whatever fn returns as JSON.
func clientAction(fn func(ctx context.Context, cmd *cli.Command, client *admin.Client) (any, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		reg, err := initApp(cmd)
		if err != nil {
			return err
		}

		client, err := app.UseAdminClient(reg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		result, err := fn(ctx, cmd, client)
		if err != nil {
			return err
		}

		return printJSON(cmd, result)
	}
}

func printJSON(cmd *cli.Command, doc any) error {
	body, err := codec.Indent(doc)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = fmt.Fprintln(writer(cmd), string(body))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
