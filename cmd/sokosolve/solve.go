package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/hazemry/sokosolve"
)

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "solve a single level",
		ArgsUsage: "path/to/level (or - for stdin)",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:     "width",
				Usage:    "level width in tiles",
				Required: true,
			},
			&cli.UintFlag{
				Name:     "height",
				Usage:    "level height in tiles",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Usage:   "search algorithm: bfs or astar",
				Value:   "astar",
				EnvVars: []string{"SOKOSOLVE_ALGORITHM"},
			},
			&cli.Float64Flag{
				Name:  "h-factor",
				Usage: "heuristic weight in the node priority",
				Value: 1,
			},
			&cli.Float64Flag{
				Name:  "g-factor",
				Usage: "path cost weight in the node priority",
				Value: 1,
			},
			&cli.IntFlag{
				Name:    "capacity",
				Usage:   "maximum number of distinct states",
				Value:   1 << 20,
				EnvVars: []string{"SOKOSOLVE_CAPACITY"},
			},
			&cli.Uint64Flag{
				Name:  "max-iterations",
				Usage: "iteration cap, 0 for unlimited",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "print the parsed level before solving",
			},
			&cli.StringFlag{
				Name:  "cpuprofile",
				Usage: "write a CPU profile to the given file",
			},
		},
		Action: runSolve,
	}
}

func runSolve(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one level path")
	}
	level, err := readLevel(c.Args().First())
	if err != nil {
		return err
	}
	width, height := c.Uint("width"), c.Uint("height")
	if width == 0 || width > 255 || height == 0 || height > 255 {
		return errors.Errorf("level size %dx%d out of range", width, height)
	}

	if path := c.String("cpuprofile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create cpu profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "start cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	ctx := sokosolve.NewContext(uint8(width), uint8(height), c.Int("capacity"))
	if ctx == nil {
		return errors.New("invalid context parameters")
	}
	problem := ctx.NewProblem()
	if !problem.Parse(level) {
		return errors.New("level is not compilable")
	}
	if c.Bool("print") {
		fmt.Println(problem.Format("\n"))
	}
	if !problem.PotentiallySolvable {
		logrus.Warn("level rejected by the static solvability tests")
	}

	algorithm, err := parseAlgorithm(c.String("algorithm"))
	if err != nil {
		return err
	}
	start := time.Now()
	result := sokosolve.NewSolver(ctx, problem).
		Algorithm(algorithm).
		Weights(c.Float64("h-factor"), c.Float64("g-factor")).
		MaxIterations(c.Uint64("max-iterations")).
		Solve()
	elapsed := time.Since(start)

	log := logrus.WithFields(logrus.Fields{
		"algorithm":  algorithm.String(),
		"iterations": result.Iterations,
		"elapsed":    elapsed.Round(time.Microsecond),
	})
	switch {
	case result.Solved:
		if !sokosolve.Verify(problem, result.Actions) {
			return errors.Errorf("solver returned an invalid solution %q", result.Actions)
		}
		log.WithField("length", len(result.Actions)).Info("solved")
		fmt.Println(result.Actions)
	case result.LimitExceeded:
		log.Warn("limit exceeded before a solution was found")
	default:
		log.Info("no solution exists")
	}
	return nil
}

func readLevel(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), errors.Wrap(err, "read level from stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read level %s", path)
	}
	return string(data), nil
}

func parseAlgorithm(name string) (sokosolve.Algorithm, error) {
	switch name {
	case "bfs":
		return sokosolve.BreadthFirst, nil
	case "astar":
		return sokosolve.AStar, nil
	}
	return 0, errors.Errorf("unknown algorithm %q (want bfs or astar)", name)
}
