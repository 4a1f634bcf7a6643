package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/skincheck/internal/check"
	"github.com/dtnitsch/skincheck/pkg/help"
	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// checkFlags returns fresh flag values; the app and the check command each
// need their own set.
func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "skin directory to check (default: the manifest's target directory)",
			EnvVars: []string{"SKINCHECK_DIR"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "report format: text, yaml or json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the report to this file instead of stdout",
		},
		&cli.StringFlag{
			Name:  "fields",
			Usage: "comma-separated top-level report keys to keep (yaml/json only)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "exit 2 when the directory is missing and 1 when required assets are missing",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug details",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "skincheck",
		Usage:     "check a skin directory against the default skin element list",
		Version:   Version,
		ArgsUsage: "[dir]",
		Flags:     checkFlags(),
		Action:    check.CheckAction,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "report present, missing and extra skin elements",
				ArgsUsage: "[dir]",
				Flags:     checkFlags(),
				Action:    check.CheckAction,
			},
			{
				Name:  "coldstart",
				Usage: "print a YAML cheat sheet of commands, report sections and exit codes",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
