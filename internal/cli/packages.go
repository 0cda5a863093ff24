package cli

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/admin"
	"github.com/zhulik/ccpadmin/internal/cli/flags"
	"github.com/zhulik/ccpadmin/internal/core"
)

func packagesCMD() *cli.Command {
	return &cli.Command{
		Name:     "packages",
		Aliases:  []string{"ls"},
		Usage:    "List active packages.",
		Category: "Packages",
		Action: clientAction(func(ctx context.Context, _ *cli.Command, client *admin.Client) (any, error) {
			return client.ListActivePackages(ctx, &admin.ListActivePackagesRequest{}) //nolint:wrapcheck
		}),
	}
}

func packageCMD() *cli.Command {
	return &cli.Command{
		Name:      "package",
		Aliases:   []string{"pkg"},
		Usage:     "Show a package.",
		ArgsUsage: "<id>",
		Category:  "Packages",
		Action: clientAction(func(ctx context.Context, cmd *cli.Command, client *admin.Client) (any, error) {
			if cmd.NArg() != 1 {
				return nil, fmt.Errorf("%w: expected exactly one package id", core.ErrInvalidRequest)
			}

			return client.ReadPackage(ctx, &admin.ReadPackageRequest{ID: cmd.Args().First()}) //nolint:wrapcheck
		}),
	}
}

func submitCMD() *cli.Command {
	return &cli.Command{
		Name:     "submit",
		Usage:    "Start a new transfer.",
		Category: "Packages",
		Flags:    flags.ForSubmit,
		Action: clientAction(func(ctx context.Context, cmd *cli.Command, client *admin.Client) (any, error) {
			transferType, err := admin.ParseTransferType(cmd.String(flags.FlagNameType))
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			req := &admin.CreatePackageRequest{
				Name: cmd.String(flags.FlagNameName),
				Type: transferType,
				Path: cmd.StringSlice(flags.FlagNamePath),
			}

			if cmd.IsSet(flags.FlagNameAutoApprove) {
				req.AutoApprove = lo.ToPtr(cmd.Bool(flags.FlagNameAutoApprove))
			}

			return client.CreatePackage(ctx, req) //nolint:wrapcheck
		}),
	}
}

func approveCMD() *cli.Command {
	return &cli.Command{
		Name:     "approve",
		Usage:    "Approve a transfer waiting in a watched directory.",
		Category: "Packages",
		Flags:    flags.ForApprove,
		Action: clientAction(func(ctx context.Context, cmd *cli.Command, client *admin.Client) (any, error) {
			transferType, err := admin.ParseTransferType(cmd.String(flags.FlagNameType))
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			return client.ApproveTransfer(ctx, &admin.ApproveTransferRequest{ //nolint:wrapcheck
				Type:      transferType,
				Directory: cmd.String(flags.FlagNameDirectory),
			})
		}),
	}
}
