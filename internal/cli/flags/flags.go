package flags

import (
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/core"
)

const (
	FlagNameOrigin      = "origin"
	FlagNameUsername    = "username"
	FlagNameAPIKey      = "api-key"
	FlagNameNoAuth      = "no-auth"
	FlagNameLogLevel    = "log-level"
	FlagNameProfile     = "profile"
	FlagNameServerPort  = "port"
	FlagNameBackend     = "backend"
	FlagNameAssets      = "assets"
	FlagNameName        = "name"
	FlagNamePath        = "path"
	FlagNameType        = "type"
	FlagNameAutoApprove = "auto-approve"
	FlagNameDirectory   = "directory"
)

var (
	Origin = &cli.StringFlag{
		Name:    FlagNameOrigin,
		Aliases: []string{"o"},
		Usage:   "Address the admin UI is served from, `URL`. API calls go to URL/api.",
		Value:   core.DefaultOrigin,
	}

	Username = &cli.StringFlag{
		Name:    FlagNameUsername,
		Aliases: []string{"u"},
		Usage:   "Authenticate as `USER`.",
	}

	APIKey = &cli.StringFlag{
		Name:    FlagNameAPIKey,
		Aliases: []string{"k"},
		Usage:   "Authenticate with `KEY`.",
	}

	NoAuth = &cli.BoolFlag{
		Name:  FlagNameNoAuth,
		Usage: "Do not send the Authorization header.",
	}

	LogLevel = &cli.StringFlag{
		Name:    FlagNameLogLevel,
		Aliases: []string{"l"},
		Usage:   "Set log level to `LEVEL`.",
		Value:   "info",
	}

	Profile = &cli.StringFlag{
		Name:    FlagNameProfile,
		Aliases: []string{"p"},
		Usage:   "Load connection settings from YAML `FILE`.",
		Sources: cli.EnvVars("CCP_ADMIN_PROFILE"),
	}

	ServerPort = &cli.IntFlag{
		Name:  FlagNameServerPort,
		Usage: "Set server port to `PORT`.",
		Value: core.DefaultHTTPPort,
	}

	Backend = &cli.StringFlag{
		Name:    FlagNameBackend,
		Aliases: []string{"b"},
		Usage:   "Forward /api requests to `URL`.",
		Value:   core.DefaultBackendURL,
	}

	Assets = &cli.StringFlag{
		Name:    FlagNameAssets,
		Aliases: []string{"a"},
		Usage:   "Serve the UI from `DIR`.",
	}

	Global = []cli.Flag{
		Origin,
		Username,
		APIKey,
		NoAuth,
		LogLevel,
		Profile,
	}

	ForServer = []cli.Flag{
		ServerPort,
		Backend,
		Assets,
	}
)

var (
	Name = &cli.StringFlag{
		Name:     FlagNameName,
		Aliases:  []string{"n"},
		Usage:    "Package `NAME`.",
		Required: true,
	}

	Path = &cli.StringSliceFlag{
		Name:     FlagNamePath,
		Usage:    "Source `PATH`, can be repeated.",
		Required: true,
	}

	TransferType = &cli.StringFlag{
		Name:    FlagNameType,
		Aliases: []string{"t"},
		Usage:   "Transfer `TYPE`: standard, zip-file, unzipped-bag, zipped-bag, dspace, maildir or dataverse.",
		Value:   "standard",
	}

	AutoApprove = &cli.BoolFlag{
		Name:  FlagNameAutoApprove,
		Usage: "Skip the transfer approval decision.",
	}

	Directory = &cli.StringFlag{
		Name:     FlagNameDirectory,
		Aliases:  []string{"d"},
		Usage:    "Transfer `DIR` awaiting approval.",
		Required: true,
	}

	ForSubmit = []cli.Flag{
		Name,
		Path,
		TransferType,
		AutoApprove,
	}

	ForApprove = []cli.Flag{
		TransferType,
		Directory,
	}
)
