package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/app"
	"github.com/abhisek/eduvision/internal/apikey"
	"github.com/abhisek/eduvision/internal/catalog"
	"github.com/abhisek/eduvision/internal/document"
	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/prompts"
	"github.com/abhisek/eduvision/internal/wizard"
)

// generateOptions are the wizard answers given as flags.
type generateOptions struct {
	Mode            string
	Age             string
	Subject         string
	Topic           string
	Goal            string
	Timing          string
	Modules         []string
	Interests       string
	Differentiation bool
	Language        string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson plan without the TUI",
	Example: `  eduvision generate --subject 生物 --topic 光合作用 --goal Understand --modules A,E
  eduvision generate --mode student --subject English --topic Animals --goal Remember --modules C --images --pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		opts := readGenerateFlags(cmd)
		state, err := buildState(opts)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cfg.LLM().HasKey() {
			return fmt.Errorf("%w: set gemini.api_key or GEMINI_API_KEY", apikey.ErrEmptyKey)
		}
		if out, _ := cmd.Flags().GetString("output-dir"); out != "" {
			cfg.OutputDir = out
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		svc, err := app.NewServices(ctx, cfg, st.EventRepo(), log)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Generating plan for %s / %s ...\n", state.Subject, state.Topic)
		outcome := svc.Planner.Generate(ctx, state)
		if !outcome.OK() {
			return errors.New(outcome.Text())
		}

		htmlPath, err := writeFile(cfg.OutputDir, planFileName(time.Now()), outcome.HTML)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved plan:", htmlPath)

		if md, _ := cmd.Flags().GetBool("markdown"); md {
			fmt.Println(document.Parse(document.StripPrompts(outcome.HTML)).Markdown())
		}

		var gallery images.Gallery
		if withImages, _ := cmd.Flags().GetBool("images"); withImages {
			gallery, err = renderImages(cmd, svc, outcome.HTML, cfg.OutputDir)
			if err != nil {
				return err
			}
		}

		if withPDF, _ := cmd.Flags().GetBool("pdf"); withPDF {
			path, err := svc.PDF.Export(ctx, outcome.HTML, gallery, time.Now())
			if err != nil {
				return fmt.Errorf("export pdf: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Saved PDF:", path)
		}
		return nil
	},
}

func readGenerateFlags(cmd *cobra.Command) generateOptions {
	f := cmd.Flags()
	var o generateOptions
	o.Mode, _ = f.GetString("mode")
	o.Age, _ = f.GetString("age")
	o.Subject, _ = f.GetString("subject")
	o.Topic, _ = f.GetString("topic")
	o.Goal, _ = f.GetString("goal")
	o.Timing, _ = f.GetString("timing")
	o.Modules, _ = f.GetStringSlice("modules")
	o.Interests, _ = f.GetString("interests")
	o.Differentiation, _ = f.GetBool("differentiation")
	o.Language, _ = f.GetString("language")
	return o
}

// buildState walks the wizard with the given answers, applying the same
// guards as the TUI.
func buildState(o generateOptions) (wizard.State, error) {
	mode, ok := wizard.ParseMode(o.Mode)
	if !ok {
		return wizard.State{}, fmt.Errorf("invalid --mode %q (want teacher or student)", o.Mode)
	}
	s := wizard.New().SelectMode(mode)

	s = s.SetAge(o.Age).SetSubject(o.Subject).SetTopic(o.Topic)
	if s = s.Next(); s.Step != wizard.StepGoals {
		return s, errors.New("--subject and --topic are required")
	}

	goal, ok := catalog.ResolveGoal(o.Goal)
	if !ok {
		return s, fmt.Errorf("invalid --goal %q (see `eduvision modules`)", o.Goal)
	}
	s = s.SetLearningGoal(goal)
	if o.Timing != "" {
		timing, ok := catalog.ResolveTiming(o.Timing)
		if !ok {
			return s, fmt.Errorf("invalid --timing %q (see `eduvision modules`)", o.Timing)
		}
		s = s.SetTiming(timing)
	}
	s = s.Next()

	for _, id := range o.Modules {
		id = strings.ToUpper(strings.TrimSpace(id))
		if !catalog.IsModuleID(id) {
			return s, fmt.Errorf("unknown module %q (see `eduvision modules`)", id)
		}
		if !s.IsSelected(id) {
			s = s.ToggleModule(id)
		}
	}
	if s = s.Next(); s.Step != wizard.StepStudentTraits {
		return s, errors.New("--modules needs at least one module")
	}

	s = s.SetInterests(o.Interests).SetDifferentiation(o.Differentiation)
	switch strings.ToLower(o.Language) {
	case "":
	case "zh", "zh-tw", "chinese":
		s = s.SetVisualLanguage(wizard.LanguageChinese)
	case "en", "english":
		s = s.SetVisualLanguage(wizard.LanguageEnglish)
	default:
		return s, fmt.Errorf("invalid --language %q (want zh or en)", o.Language)
	}
	return s, nil
}

// renderImages draws every prompt of the plan and saves the finished
// images. Failed images are reported, not fatal.
func renderImages(cmd *cobra.Command, svc *app.Services, html, outDir string) (images.Gallery, error) {
	items := prompts.Extract(html)
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, images.NoPromptsNotice)
		return nil, nil
	}

	done := 0
	gallery, err := svc.Images.GenerateAll(cmd.Context(), items, func(g images.Gallery) {
		c := g.Counts()
		if n := c[images.StatusCompleted] + c[images.StatusError]; n != done {
			done = n
			fmt.Fprintf(os.Stderr, "Images: %d/%d\n", done, len(g))
		}
	})
	if err != nil {
		return gallery, fmt.Errorf("generate images: %w", err)
	}

	for i, img := range gallery {
		if img.Status != images.StatusCompleted {
			fmt.Fprintf(os.Stderr, "Image %d failed: %s\n", i+1, img.Error)
			continue
		}
		path, err := images.Save(outDir, img)
		if err != nil {
			return gallery, fmt.Errorf("save image %d: %w", i+1, err)
		}
		fmt.Fprintf(os.Stderr, "Saved image %d [%s]: %s\n", i+1, img.AspectRatio, path)
	}
	return gallery, nil
}

// planFileName returns eduvision-plan-YYYY-MM-DD.html.
func planFileName(now time.Time) string {
	return "eduvision-plan-" + now.Format("2006-01-02") + ".html"
}

func writeFile(dir, name, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

func init() {
	f := generateCmd.Flags()
	f.String("mode", "teacher", "Persona: teacher or student")
	f.String("age", "", "Target age or grade")
	f.String("subject", "", "Subject (required)")
	f.String("topic", "", "Learning topic (required)")
	f.String("goal", "", "Learning goal, e.g. Understand or 理解 (required)")
	f.String("timing", "", "Teaching timing, e.g. Intro or 引起動機")
	f.StringSlice("modules", nil, "Visual modules A-F, comma separated (required)")
	f.String("interests", "", "Student interests")
	f.Bool("differentiation", false, "Include differentiated instruction strategies")
	f.String("language", "", "Language of text inside images: zh or en (default follows the subject)")
	f.Bool("images", false, "Render the illustration prompts")
	f.Bool("pdf", false, "Export the plan (and rendered images) to PDF")
	f.Bool("markdown", false, "Print the plan as Markdown to stdout")
	f.String("output-dir", "", "Directory for generated files (overrides output_dir)")
}
