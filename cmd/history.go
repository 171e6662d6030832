package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/document"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/pdfexport"
	"github.com/abhisek/eduvision/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse archived lesson plans",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plans, err := s.EventRepo().QueryPlanEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No plans archived yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-7s  %-12s  %-24s  %-11s  %-7s  %s\n",
			"ID", "Timestamp", "Mode", "Subject", "Topic", "Modules", "Prompts", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, p := range plans {
			ok := "✓"
			if !p.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-16s  %-7s  %-12s  %-24s  %-11s  %-7d  %s\n",
				p.ID,
				p.Timestamp.Local().Format("2006-01-02 15:04"),
				p.Mode,
				truncate(p.Subject, 12),
				truncate(p.Topic, 24),
				strings.Join(p.Modules, ","),
				p.PromptCount,
				ok,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an archived plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %d\n", rec.ID)
		fmt.Printf("Time:        %s\n", rec.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Mode:        %s\n", rec.Mode)
		fmt.Printf("Age:         %s\n", rec.Age)
		fmt.Printf("Subject:     %s\n", rec.Subject)
		fmt.Printf("Topic:       %s\n", rec.Topic)
		fmt.Printf("Goal:        %s\n", rec.LearningGoal)
		if rec.Timing != "" {
			fmt.Printf("Timing:      %s\n", rec.Timing)
		}
		fmt.Printf("Modules:     %s\n", strings.Join(rec.Modules, ", "))
		if rec.Interests != "" {
			fmt.Printf("Interests:   %s\n", rec.Interests)
		}
		fmt.Printf("Diff.:       %v\n", rec.Differentiation)
		fmt.Printf("Language:    %s\n", rec.VisualLanguage)
		fmt.Printf("Prompts:     %d\n", rec.PromptCount)
		if !rec.Success {
			fmt.Printf("Error:       %s\n", rec.ErrorMessage)
			return nil
		}

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		if raw, _ := cmd.Flags().GetBool("html"); raw {
			fmt.Println(rec.HTML)
			return nil
		}
		fmt.Println(document.Parse(document.StripPrompts(rec.HTML)).Markdown())
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write an archived plan to HTML (and optionally PDF)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadPlan(cmd, args[0])
		if err != nil {
			return err
		}
		if !rec.Success {
			return fmt.Errorf("plan %d failed to generate: %s", rec.ID, rec.ErrorMessage)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		outDir := cfg.OutputDir
		if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
			outDir = dir
		}

		path, err := writeFile(outDir, historyFileName(*rec, ".html"), rec.HTML)
		if err != nil {
			return err
		}
		fmt.Println("Saved plan:", path)

		if withPDF, _ := cmd.Flags().GetBool("pdf"); withPDF {
			exp, err := newExporter(cfg, outDir)
			if err != nil {
				return err
			}
			pdfPath, err := exp.Export(cmd.Context(), rec.HTML, nil, rec.Timestamp)
			if err != nil {
				return fmt.Errorf("export pdf: %w", err)
			}
			fmt.Println("Saved PDF:", pdfPath)
		}
		return nil
	},
}

func loadPlan(cmd *cobra.Command, arg string) (*store.PlanEventRecord, error) {
	var id int
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil {
		return nil, fmt.Errorf("invalid ID %q: %w", arg, err)
	}

	s, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	rec, err := s.EventRepo().GetPlanEvent(context.Background(), id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("plan %d not found", id)
	}
	return rec, nil
}

// historyFileName returns e.g. eduvision-12-sheng-wu-guang-he-zuo-yong.html.
func historyFileName(rec store.PlanEventRecord, ext string) string {
	name := fmt.Sprintf("eduvision-%d", rec.ID)
	if s := slug.Make(rec.Subject + " " + rec.Topic); s != "" {
		name += "-" + s
	}
	return name + ext
}

// newExporter builds a PDF exporter without touching the providers.
func newExporter(cfg *config.Config, outDir string) (*pdfexport.Exporter, error) {
	dataDir, err := cfg.ResolvedDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	font := pdfexport.FontSource{
		Path:     cfg.PDF.FontPath,
		URL:      cfg.PDF.FontURL,
		CacheDir: filepath.Join(dataDir, "fonts"),
	}
	return pdfexport.NewExporter(font, outDir, logger.Nop()), nil
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of plans to show")
	historyShowCmd.Flags().Bool("html", false, "Print the raw HTML instead of Markdown")
	historyExportCmd.Flags().Bool("pdf", false, "Also export a PDF")
	historyExportCmd.Flags().String("output-dir", "", "Directory for exported files (overrides output_dir)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
}
