package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/app"
	"github.com/zhulik/ccpadmin/internal/cli/flags"
	"github.com/zhulik/ccpadmin/internal/config"
	"github.com/zhulik/ccpadmin/internal/di"
	"github.com/zhulik/ccpadmin/internal/profile"
	"github.com/zhulik/ccpadmin/internal/registry"
)

// buildConfig layers defaults, environment, profile and flags, in that order.
func buildConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err //nolint:wrapcheck
	}

	if path := cmd.String(flags.FlagNameProfile); path != "" {
		p, err := profile.ParseFile(path)
		if err != nil {
			return cfg, err //nolint:wrapcheck
		}

		p.Apply(&cfg)
	}

	if cmd.IsSet(flags.FlagNameOrigin) {
		cfg.OriginURL = cmd.String(flags.FlagNameOrigin)
	}

	if cmd.IsSet(flags.FlagNameUsername) {
		cfg.User = cmd.String(flags.FlagNameUsername)
	}

	if cmd.IsSet(flags.FlagNameAPIKey) {
		cfg.Key = cmd.String(flags.FlagNameAPIKey)
	}

	if cmd.Bool(flags.FlagNameNoAuth) {
		cfg.Auth = false
	}

	if cmd.IsSet(flags.FlagNameLogLevel) {
		cfg.Loglevel = cmd.String(flags.FlagNameLogLevel)
	}

	if cmd.IsSet(flags.FlagNameServerPort) {
		cfg.HttpPort = int(cmd.Int(flags.FlagNameServerPort))
	}

	if cmd.IsSet(flags.FlagNameBackend) {
		cfg.APIURL = cmd.String(flags.FlagNameBackend)
	}

	if cmd.IsSet(flags.FlagNameAssets) {
		cfg.Assets = cmd.String(flags.FlagNameAssets)
	}

	return cfg, config.Validate(cfg) //nolint:wrapcheck
}

func initDI(cmd *cli.Command) (*registry.Registry, config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}

	return di.New(cfg, errWriter(cmd)), cfg, nil
}

// initApp builds the application context once and publishes it to the registry.
func initApp(cmd *cli.Command) (*registry.Registry, error) {
	reg, cfg, err := initDI(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](reg.Injector())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	appCtx, err := app.New(cfg, logger)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err := app.Provide(reg, appCtx); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return reg, nil
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}
