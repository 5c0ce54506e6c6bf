package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eaugeas/redblack/config"
	"github.com/eaugeas/redblack/logs"
	"github.com/eaugeas/redblack/runner"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	c := &runner.Config{}
	parser, err := config.Generate(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := parser.Parse(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(os.Stderr, err)
		_ = parser.Usage()
		return 1
	}

	logger, err := logs.New(c.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := runner.RunFiles(c, logger); err != nil {
		logger.Error("failed to process keys", err)
		return 1
	}

	return 0
}
