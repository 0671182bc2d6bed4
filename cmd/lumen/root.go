package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/lumenapp/lumen/internal/adapter/provider/phrasegen"
	"github.com/lumenapp/lumen/internal/app"
	"github.com/lumenapp/lumen/internal/config"
	"github.com/lumenapp/lumen/internal/domain"
	"github.com/lumenapp/lumen/internal/service/feed"
)

// cliEnv is resolved once per invocation before any subcommand runs.
type cliEnv struct {
	log    *slog.Logger
	client *phrasegen.Client
	feed   *feed.Service
	json   bool
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{}

	var (
		baseURL string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:          "lumen",
		Short:        "Generate, explain and translate English practice phrases",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("timeout") {
				if timeout < 0 {
					return fmt.Errorf("--timeout must be >= 0 (got %s)", timeout)
				}
				cfg.Timeout = timeout
			}

			env.log = app.NewLogger(cfg.Log)
			env.client = phrasegen.New(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, env.log)
			env.feed = feed.NewService(env.log, env.client)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "generation endpoint (overrides AI_BASE_URL)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout, 0 disables (overrides AI_TIMEOUT)")
	root.PersistentFlags().BoolVar(&env.json, "json", false, "print JSON instead of text")

	root.AddCommand(
		newPhrasesCmd(env),
		newFeedCmd(env),
		newExplainCmd(env),
		newTranslateCmd(env),
		newVersionCmd(),
	)
	return root
}

// prefsFlags are the onboarding choices shared by phrases and feed.
type prefsFlags struct {
	level      string
	interests  []string
	objectives []string
	count      int
}

func (p *prefsFlags) register(cmd *cobra.Command) {
	def := domain.DefaultPreferences()
	cmd.Flags().StringVar(&p.level, "level", def.Level.String(), "English level")
	cmd.Flags().StringSliceVar(&p.interests, "interest", def.InterestLabels(), "interest (repeatable)")
	cmd.Flags().StringSliceVar(&p.objectives, "objective", def.ObjectiveLabels(), "learning objective (repeatable)")
	cmd.Flags().IntVar(&p.count, "count", 0, "number of phrases, 0 uses the default")
}

func (p *prefsFlags) preferences() (domain.Preferences, error) {
	level, err := parseLevel(p.level)
	if err != nil {
		return domain.Preferences{}, err
	}
	if p.count < 0 {
		return domain.Preferences{}, fmt.Errorf("--count must be >= 0 (got %d)", p.count)
	}
	return domain.Preferences{
		Level:      level,
		Interests:  lo.Map(p.interests, func(s string, _ int) domain.Interest { return domain.Interest(strings.TrimSpace(s)) }),
		Objectives: lo.Map(p.objectives, func(s string, _ int) domain.Objective { return domain.Objective(strings.TrimSpace(s)) }),
	}, nil
}

// parseLevel matches s case-insensitively against the onboarding levels.
func parseLevel(s string) (domain.EnglishLevel, error) {
	level, ok := lo.Find(domain.AllLevels, func(l domain.EnglishLevel) bool {
		return strings.EqualFold(l.String(), strings.TrimSpace(s))
	})
	if !ok {
		return "", fmt.Errorf("unknown level %q (want one of %s)", s,
			strings.Join(lo.Map(domain.AllLevels, func(l domain.EnglishLevel, _ int) string { return l.String() }), ", "))
	}
	return level, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Skips the root pre-run: printing the version needs no config.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lumen", app.BuildVersion())
		},
	}
}
