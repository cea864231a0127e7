package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/promptmatch/internal/client"
)

type rootOptions struct {
	url     string
	timeout time.Duration
}

func (o *rootOptions) client() (*client.Client, error) {
	return client.New(o.url, &http.Client{Timeout: o.timeout})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "promptctl",
		Short: "Client for the Prompt Matching API",
		Long: `promptctl sends requests to a running Prompt Matching API.

Available subcommands:
  match  - Resolve a situation, level and file type to a prompt
  health - Check that the service is running
  info   - Show the capability document
  smoke  - Run request scenarios and report PASS/FAIL`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.url, "url", "http://localhost:5000", "Service base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	cmd.AddCommand(
		newMatchCmd(opts),
		newHealthCmd(opts),
		newInfoCmd(opts),
		newSmokeCmd(opts),
	)

	return cmd
}
