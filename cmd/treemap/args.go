package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Args struct {
	ConfigPath string
	Debug      bool
	Tree       bool
}

// CreateCommand returns the treemap command. Its action hands the parsed
// flags to runFunc.
func CreateCommand(runFunc func(ctx context.Context, args *Args) error) *cli.Command {
	return &cli.Command{
		Name:  "treemap",
		Usage: "insert key/value entries into an unbalanced binary search tree and print it",
		Description: `Entries come from a TOML file of [[entries]] tables (key, value).
Without --config the two built-in words are inserted.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "TOML file of [[entries]] to insert",
				OnlyOnce: true,
				Sources:  cli.EnvVars("TREEMAP_CONFIG"),
			},

			&cli.BoolFlag{
				Name:     "debug",
				Aliases:  []string{"d"},
				Usage:    "enable debug output",
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name:     "tree",
				Aliases:  []string{"t"},
				Usage:    "render the tree shape after inserting",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runFunc(ctx, parseArgs(cmd))
		},
	}
}

func parseArgs(cmd *cli.Command) *Args {
	return &Args{
		ConfigPath: cmd.String("config"),
		Debug:      cmd.Bool("debug"),
		Tree:       cmd.Bool("tree"),
	}
}
