package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/ccpadmin/internal/cli/flags"
)

const VERSION = "0.1.0"

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "ccpadmin",
		Usage:   "CCP admin API client and development server.",
		Version: VERSION,
		Flags:   flags.Global,
		Commands: []*cli.Command{
			serveCMD(),
			packagesCMD(),
			packageCMD(),
			submitCMD(),
			approveCMD(),
			decisionsCMD(),
			resolveCMD(),
			callCMD(),
		},
	}
}

func Run() {
	if err := NewCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
