package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/logger"
)

// setup loads the application config, applies global flag overrides and
// initialises logging.
func setup(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	if ctx.GlobalIsSet("log-level") {
		cfg.Logging.Level = ctx.GlobalString("log-level")
	}
	if ctx.GlobalIsSet("log-file") {
		cfg.Logging.LogFile = ctx.GlobalString("log-file")
	}
	if ctx.GlobalBool("v") {
		cfg.Logging.Level = "debug"
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
