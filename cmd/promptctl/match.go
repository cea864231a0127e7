package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/promptmatch/internal/prompts"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	var req prompts.Request

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Resolve a situation, level and file type to a prompt",
		Example: `  promptctl match --situation "Commercial Auto" --level Structure \
    --file-type "Summary Report" --data "claim notes"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}

			out, err := c.Match(cmd.Context(), matchFields(cmd, req))
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if !out.Success {
				return &exitError{msg: fmt.Sprintf("match failed with status %d", out.Status)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Situation, "situation", "", "Claim situation")
	cmd.Flags().StringVar(&req.Level, "level", "", "Output level")
	cmd.Flags().StringVar(&req.FileType, "file-type", "", "Source file type")
	cmd.Flags().StringVar(&req.Data, "data", "", "Request payload")

	return cmd
}

// matchFields sends only the flags the user set, so omitted flags surface
// as missing fields rather than empty strings.
func matchFields(cmd *cobra.Command, req prompts.Request) prompts.Fields {
	all := req.Fields()
	fields := prompts.Fields{}
	for flag, field := range map[string]string{
		"situation": prompts.FieldSituation,
		"level":     prompts.FieldLevel,
		"file-type": prompts.FieldFileType,
		"data":      prompts.FieldData,
	} {
		if cmd.Flags().Changed(flag) {
			fields[field] = all[field]
		}
	}
	return fields
}
