package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/catalog"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the visual modules, learning goals and timings",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Visual Modules")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, m := range catalog.Modules() {
			fmt.Fprintf(out, "%s  %s %s\n     %s\n", m.ID, m.Icon, m.Title, m.Description)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Learning Goals (--goal)")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, g := range catalog.LearningGoals() {
			fmt.Fprintln(out, "  "+g)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Timing (--timing)")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, t := range catalog.TimingOptions() {
			fmt.Fprintln(out, "  "+t)
		}
	},
}
