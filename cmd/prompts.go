package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/prompts"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts <file>",
	Short: "Print the image prompts embedded in a plan",
	Long:  "Reads a generated plan (HTML, or \"-\" for stdin) and prints the illustration prompts it carries.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read plan: %w", err)
		}

		items := prompts.Extract(string(data))
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(items)
		}

		if len(items) == 0 {
			fmt.Fprintln(out, "No image prompts found.")
			return nil
		}
		for i, it := range items {
			fmt.Fprintf(out, "%2d  [%-4s]  %s\n", i+1, prompts.NormalizeRatio(string(it.AspectRatio)), it.Prompt)
		}
		return nil
	},
}

func init() {
	promptsCmd.Flags().Bool("json", false, "Print the prompts as JSON")
}
