package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hazemry/sokosolve"
)

// defaultCapacity bounds uncapped suite cases; capped cases size their
// arena from the iteration limit instead.
const defaultCapacity = 1 << 20

// A test suite is a YAML file of levels with solver configurations and
// expected outcomes.
type testSuite struct {
	Cases []testCase `yaml:"cases"`
}

type testCase struct {
	Name   string       `yaml:"name"`
	Width  uint8        `yaml:"width"`
	Height uint8        `yaml:"height"`
	Level  string       `yaml:"level"`
	Solver solverConfig `yaml:"solver"`
	Expect expectation  `yaml:"expect"`
}

type solverConfig struct {
	Algorithm     string  `yaml:"algorithm"`
	HFactor       float64 `yaml:"h_factor"`
	GFactor       float64 `yaml:"g_factor"`
	MaxIterations uint64  `yaml:"max_iterations"`
}

type expectation struct {
	Compilable bool `yaml:"compilable"`
	Solved     bool `yaml:"solved"`
	// Length is the optimal solution length; zero accepts any length.
	// Solutions themselves may vary by tie-breaks, so suites check
	// length and validity, never exact strings.
	Length int `yaml:"length"`
	// LimitExceeded, when set, pins down why an unsolved case stopped.
	LimitExceeded *bool `yaml:"limit_exceeded"`
}

func loadSuite(path string) (*testSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read suite %s", path)
	}
	var suite testSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, errors.Wrapf(err, "parse suite %s", path)
	}
	if len(suite.Cases) == 0 {
		return nil, errors.Errorf("suite %s contains no cases", path)
	}
	return &suite, nil
}

// run executes one case against a fresh context and returns a
// descriptive error when an expectation fails.
func (tc *testCase) run() error {
	if tc.Width == 0 || tc.Height == 0 {
		return errors.Errorf("case %q: level size %dx%d out of range", tc.Name, tc.Width, tc.Height)
	}
	capacity := defaultCapacity
	if tc.Solver.MaxIterations > 0 {
		// Four successors per expansion bound the states a capped
		// search can admit.
		capacity = int(4 * tc.Solver.MaxIterations)
	}
	ctx := sokosolve.NewContext(tc.Width, tc.Height, capacity)
	problem := ctx.NewProblem()
	compilable := problem.Parse(tc.Level)
	if compilable != tc.Expect.Compilable {
		return errors.Errorf("case %q: compilable = %v, expected %v", tc.Name, compilable, tc.Expect.Compilable)
	}
	if !compilable {
		return nil
	}

	algorithm, err := parseAlgorithm(tc.Solver.Algorithm)
	if err != nil {
		return errors.Wrapf(err, "case %q", tc.Name)
	}
	result := sokosolve.NewSolver(ctx, problem).
		Algorithm(algorithm).
		Weights(tc.Solver.HFactor, tc.Solver.GFactor).
		MaxIterations(tc.Solver.MaxIterations).
		Solve()
	if result.Solved != tc.Expect.Solved {
		return errors.Errorf("case %q: solved = %v, expected %v", tc.Name, result.Solved, tc.Expect.Solved)
	}
	if want := tc.Expect.LimitExceeded; want != nil && result.LimitExceeded != *want {
		return errors.Errorf("case %q: limit_exceeded = %v, expected %v", tc.Name, result.LimitExceeded, *want)
	}
	if !result.Solved {
		return nil
	}
	if tc.Expect.Length > 0 && len(result.Actions) != tc.Expect.Length {
		return errors.Errorf("case %q: solution length %d, expected %d", tc.Name, len(result.Actions), tc.Expect.Length)
	}
	if !sokosolve.Verify(problem, result.Actions) {
		return errors.Errorf("case %q: actions %q do not solve the level", tc.Name, result.Actions)
	}
	return nil
}
