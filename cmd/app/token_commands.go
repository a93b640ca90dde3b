package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vehiclebff/cmd/app/commands"
	"github.com/allisson/vehiclebff/internal/app"
	"github.com/allisson/vehiclebff/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "upstream-token",
			Usage: "Acquire an upstream access token to verify identity provider settings",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				provider, err := container.TokenProvider()
				if err != nil {
					return err
				}

				return commands.RunUpstreamToken(
					ctx,
					provider,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "issue-token",
			Usage: "Issue a gateway bearer token without going through login",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "subject",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Token subject (user or service identifier)",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "Display name carried in the token (defaults to subject)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokens, err := container.JWTService()
				if err != nil {
					return err
				}

				return commands.RunIssueToken(
					tokens,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("subject"),
					cmd.String("name"),
					cmd.String("format"),
				)
			},
		},
	}
}
