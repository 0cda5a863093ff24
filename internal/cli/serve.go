package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/samber/do"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/cli/flags"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/internal/webui"
)

func serveCMD() *cli.Command {
	return &cli.Command{
		Name:     "serve",
		Aliases:  []string{"s"},
		Usage:    "Serve the admin UI and forward /api requests to the admin API.",
		Category: "Service",
		Flags:    flags.ForServer,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cmd)
		},
	}
}

// runServer blocks until the server fails or ctx is done.
func runServer(ctx context.Context, cmd *cli.Command) error {
	reg, _, err := initDI(cmd)
	if err != nil {
		return err
	}

	injector := reg.Injector()

	webui.Register(injector)

	server, err := do.Invoke[*webui.Server](injector)
	if err != nil {
		return fmt.Errorf("failed to create %s server: %w", core.ComponentNameWebUI, err)
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.Run()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		server.Logger().Info("Shutting down.")

		return injector.Shutdown() //nolint:wrapcheck
	}
}
