package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ocial123/qr-event-app/cmd/app/commands"
	"github.com/ocial123/qr-event-app/internal/app"
	"github.com/ocial123/qr-event-app/internal/config"
)

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "issue-tokens",
			Usage: "Issue a batch of single-use redemption tokens",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "count",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Number of tokens to issue",
				},
				&cli.StringFlag{
					Name:    "meta",
					Aliases: []string{"m"},
					Value:   "",
					Usage:   "Free-form label attached to every token in the batch",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunIssueTokens(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultOutput(),
					int(cmd.Int("count")),
					cmd.String("meta"),
					cmd.String("format"),
				)
			},
		},
	}
}
