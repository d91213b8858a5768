package main

import (
	"fmt"

	"github.com/aussiebroadwan/salary/internal/salary/app"
	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/internal/salary/service"
	"github.com/urfave/cli/v2"
)

// Build information, set via ldflags.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "salary",
		Usage:   "Salary lookup service with per-user tokens",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", app.BuildVersion, Commit, BuildTime),
		Commands: []*cli.Command{
			serveCommand(),
			tokenCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP gateway",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{app.EnvPrefix + "CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := app.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}

			application, err := app.New(c.Context, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return application.Run(c.Context)
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Token utilities",
		Subcommands: []*cli.Command{
			{
				Name:  "derive",
				Usage: "Print the token a login would be issued",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "login", Aliases: []string{"l"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
					&cli.StringFlag{Name: "secret", Value: service.DefaultTokenSecret},
				},
				Action: func(c *cli.Context) error {
					engine := service.NewTokenEngine(c.String("secret"), service.DefaultTokenTTL)
					token := engine.Derive(&domain.UserRecord{
						Login:    c.String("login"),
						Password: c.String("password"),
					})
					_, err := fmt.Fprintln(c.App.Writer, token)
					return err
				},
			},
		},
	}
}
