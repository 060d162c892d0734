package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
)

func main() {
	app := &cli.App{
		Name:    "sokosolve",
		Usage:   "BFS and A* solvers for Sokoban levels",
		Version: version(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "enable debug logging",
				EnvVars: []string{"SOKOSOLVE_VERBOSE"},
			},
		},
		Before: func(ctx *cli.Context) error {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if ctx.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			solveCommand(),
			testCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func version() string {
	if GitCommit == "" {
		return Version
	}
	return Version + "-" + GitCommit
}
