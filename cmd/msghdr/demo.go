package main

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/msghdr/message"
)

func demoCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference header scenario",
		Long: "The demo subcommand builds a request with mixed-case and underscored header names, " +
			"prints the resulting headers and a few lookups.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, args)
		},
	}
}

type demoStep struct {
	name  string
	value any
	add   bool
}

var demoSteps = []demoStep{
	{"Auth", "Bearer Token", false},
	{"auth", []string{"New Bearer Token", "Just Token"}, true},
	{"Api_Auth", "New Bearer Token        ", true},
	{"X-Auth", "X-Token", false},
	{"X-AUTH", "NEW X-Token", true},
	{"Version", "1", false},
}

func runDemo(cmd *cobra.Command, args *rootArgs) error {
	req := message.NewRequest(&message.RequestOptions{
		Validation: args.validation(),
		Logger:     args.logger,
	})

	var err error
	for _, st := range demoSteps {
		if st.add {
			req, err = req.WithAddedHeader(st.name, st.value)
		} else {
			req, err = req.WithHeader(st.name, st.value)
		}
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	req = req.WithoutHeader("versIon")

	out := cmd.OutOrStdout()
	if err := printFields(out, req.Headers(), args); err != nil {
		return errtrace.Wrap(err)
	}
	if args.json {
		return nil
	}

	fmt.Fprintln(out)
	for _, name := range []string{"AUTH", "AA"} {
		fmt.Fprintf(out, "header %s: %q\n", name, req.Header(name))
	}
	for _, name := range []string{"X-AUTH", "X"} {
		fmt.Fprintf(out, "line %s: %q\n", name, req.HeaderLine(name))
	}
	return nil
}
