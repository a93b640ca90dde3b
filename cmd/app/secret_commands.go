package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vehiclebff/cmd/app/commands"
	"github.com/allisson/vehiclebff/internal/app"
	"github.com/allisson/vehiclebff/internal/config"
)

func getSecretCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash a login password for LOGIN_PASSWORD_HASH (reads stdin when --password is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Plaintext password to hash",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunHashPassword(
					container.PasswordService(),
					commands.DefaultIO(),
					cmd.String("password"),
				)
			},
		},
		{
			Name:  "encrypt-secret",
			Usage: "Encrypt the identity client secret with a secrets keeper (reads stdin when --value is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "keeper-uri",
					Aliases: []string{"k"},
					Usage:   "Secrets keeper URI (defaults to SECRETS_KEEPER_URI)",
				},
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "Plaintext secret to encrypt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()

				keyURI := cmd.String("keeper-uri")
				if keyURI == "" {
					keyURI = cfg.SecretsKeeperURI
				}

				return commands.RunEncryptSecret(ctx, commands.DefaultIO(), keyURI, cmd.String("value"))
			},
		},
	}
}
