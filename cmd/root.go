package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/bff/config"
	"github.com/lambda-feedback/bff/internal/shell"
	"github.com/lambda-feedback/bff/util/conf"
	"github.com/lambda-feedback/bff/util/logging"
)

var (
	appName  = "bff"
	appUsage = `A minimal http service exposing a status message, a health
check and an echo endpoint.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load additional configuration from a json or .env file.",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := logging.New(logging.Options{
				Name:   appName,
				Level:  ctx.String("log-level"),
				Format: ctx.String("log-format"),
			})
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				CliMap:   map[string]string{"config": "config_file"},
				Defaults: config.DefaultConfig,
				FileName: ctx.Path("config"),
				Log:      log,
			})
			if err != nil {
				return err
			}

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			_ = log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

var exitHooks []func()

// OnExit registers fn to run before Execute exits the process.
func OnExit(fn func()) {
	exitHooks = append(exitHooks, fn)
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	code := run(context.Background(), os.Args)

	for _, fn := range exitHooks {
		fn()
	}

	os.Exit(code)
}

// run executes the app and returns the process exit code.
func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if app exited with ExitError, exit with given exit code
	if exitErr, ok := shell.AsExitError(err); ok {
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "exit error: %s\n", exitErr.Err)
		}
		return exitErr.ExitCode
	}

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err)

	// otherwise, exit with exit code 1
	return 1
}

// parseCommandConfig parses the config of a command, including the
// command's flags and the config file selected by the global config.
func parseCommandConfig[C interface{ Validate() error }](ctx *cli.Context) (C, error) {
	var cfg C

	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return cfg, err
	}

	global, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return cfg, err
	}

	cfg, err = conf.Parse[C](conf.ParseOptions{
		Cli:      ctx,
		Defaults: config.DefaultConfig,
		FileName: global.ConfigFile,
		Log:      log,
	})
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
