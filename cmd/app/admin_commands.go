package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ocial123/qr-event-app/cmd/app/commands"
	adminService "github.com/ocial123/qr-event-app/internal/admin/service"
)

func getAdminCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash an admin password and print the allow-list entry",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Admin username for the allow-list entry",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Plain text password to hash",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				// Built without the configured allow-list so the command works
				// before any admin entry exists.
				credentialService, err := adminService.NewCredentialService("")
				if err != nil {
					return err
				}

				return commands.RunHashPassword(
					credentialService,
					slog.Default(),
					commands.DefaultOutput(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
