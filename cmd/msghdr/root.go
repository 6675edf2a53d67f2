package main

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/msghdr/header"
	"github.com/ghettovoice/msghdr/log"
)

type rootArgs struct {
	loose   bool
	logKind string
	json    bool
	logger  *slog.Logger
}

func (a *rootArgs) validation() header.ValidationMode {
	if a.loose {
		return header.ValidateLoose
	}
	return header.ValidateStrict
}

func (a *rootArgs) setupLogger(cmd *cobra.Command) error {
	switch a.logKind {
	case "console":
		a.logger = log.NewConsole(cmd.ErrOrStderr(), slog.LevelDebug)
	case "dev":
		a.logger = log.NewDev(cmd.ErrOrStderr(), slog.LevelDebug)
	case "none", "":
		a.logger = log.Noop
	default:
		return errtrace.Wrap(fmt.Errorf("unknown logger %q, expected one of console, dev or none", a.logKind))
	}
	return nil
}

func newRootCmd(environ func() []string) *cobra.Command {
	args := &rootArgs{}

	cmd := &cobra.Command{
		Use:          "msghdr",
		Short:        "Inspect message headers",
		Long:         "msghdr builds header collections with case-insensitive names and prints them.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return args.setupLogger(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&args.loose, "loose", false, "Only check that header names and values are non-empty")
	cmd.PersistentFlags().StringVar(&args.logKind, "log", "none", "One of 'console', 'dev' or 'none'")
	cmd.PersistentFlags().BoolVar(&args.json, "json", false, "Print headers as a JSON object")

	cmd.AddCommand(demoCmd(args), envCmd(args, environ))

	return cmd
}

// printFields writes the fields either as "Name: values" lines or as a JSON object.
func printFields(w io.Writer, fields []header.Field, args *rootArgs) error {
	if !args.json {
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "%s: %s\n", f.Name, f.Line()); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	}

	hdrs, err := header.FromFields(fields, &header.StoreOptions{Validation: header.ValidateLoose, Logger: args.logger})
	if err != nil {
		return errtrace.Wrap(err)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return errtrace.Wrap(enc.Encode(hdrs))
}
