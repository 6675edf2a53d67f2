package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/msghdr/message"
)

func envCmd(args *rootArgs, environ func() []string) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print request headers found in the environment",
		Long: "The env subcommand collects HTTP_* and CONTENT_* variables of a CGI-style environment " +
			"into request headers and prints them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := message.RequestFromEnviron(environ(), &message.RequestOptions{
				Validation: args.validation(),
				Logger:     args.logger,
			})
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(printFields(cmd.OutOrStdout(), req.Headers(), args))
		},
	}
}
