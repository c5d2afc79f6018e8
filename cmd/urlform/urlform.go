package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func urlformMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Config != nil {
		// policy names in the config file are checked before any input is read
		if _, err := cfg.Config.Options(); err != nil {
			return fmt.Errorf("%w: -config: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	theLog.Debug("running", "command", args[0], "args", args[1:])
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// outOpt sends output to the file a, or stdout for "-".
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("could not create output %q: %w", a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
