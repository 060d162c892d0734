package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func testCommand() *cli.Command {
	return &cli.Command{
		Name:      "test",
		Usage:     "run a YAML suite of solver test cases",
		ArgsUsage: "path/to/suite.yaml",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "run cases concurrently, one context per case",
			},
		},
		Action: runTest,
	}
}

func runTest(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one suite path", 1)
	}
	suite, err := loadSuite(c.Args().First())
	if err != nil {
		return err
	}

	failures := make([]error, len(suite.Cases))
	if c.Bool("parallel") {
		// Each case owns a disjoint context, so cases are free to run
		// concurrently.
		var group errgroup.Group
		for i := range suite.Cases {
			i := i
			group.Go(func() error {
				failures[i] = suite.Cases[i].run()
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i := range suite.Cases {
			failures[i] = suite.Cases[i].run()
		}
	}

	failed := 0
	for i, tc := range suite.Cases {
		log := logrus.WithField("case", tc.Name)
		if err := failures[i]; err != nil {
			failed++
			log.Error(err)
		} else {
			log.Debug("passed")
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d cases failed", failed, len(suite.Cases)), 1)
	}
	logrus.WithField("cases", len(suite.Cases)).Info("suite passed")
	return nil
}
