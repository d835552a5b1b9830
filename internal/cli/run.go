package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/sprout"
	"github.com/aretw0/sprout/internal/logging"
	"github.com/aretw0/sprout/pkg/mirror"
	"github.com/aretw0/sprout/pkg/ports"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	ConfigPath string
	Headless   bool
	Debug      bool
}

// Execute wires config, logger and flow into a program and runs it.
func Execute(opts RunOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	flow := mirror.Flow{
		Placeholder: cfg.Placeholder,
		Caption:     cfg.Caption,
	}

	popts := []sprout.Option[mirror.State]{
		sprout.WithLogger[mirror.State](logger),
	}
	if opts.Headless {
		popts = append(popts, sprout.WithHeadless[mirror.State]())
	}

	program, err := sprout.New(ports.App[mirror.State]{
		Init:   flow.Init,
		Update: flow.Update,
		View:   flow.View,
	}, popts...)
	if err != nil {
		return err
	}

	return program.Run(context.Background())
}
