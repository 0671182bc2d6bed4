package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumenapp/lumen/internal/adapter/provider/phrasegen"
	"github.com/lumenapp/lumen/internal/domain"
)

func newPhrasesCmd(env *cliEnv) *cobra.Command {
	var prefs prefsFlags

	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "Generate phrases for a level, interests and objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := prefs.preferences()
			if err != nil {
				return err
			}
			phrases, err := env.client.GeneratePhrases(cmd.Context(), phrasegen.GenerationRequest{
				Level:      p.Level.String(),
				Interests:  p.InterestLabels(),
				Objectives: p.ObjectiveLabels(),
				Count:      prefs.count,
			})
			if err != nil {
				return fmt.Errorf("generate phrases: %w", err)
			}
			return writePhrases(cmd.OutOrStdout(), phrases, env.json)
		},
	}
	prefs.register(cmd)
	return cmd
}

func newFeedCmd(env *cliEnv) *cobra.Command {
	var prefs prefsFlags

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Load the phrase feed, falling back to built-in phrases when the gateway fails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := prefs.preferences()
			if err != nil {
				return err
			}
			res := env.feed.Load(cmd.Context(), p, prefs.count)
			if res.Fallback {
				fmt.Fprintf(cmd.ErrOrStderr(), "gateway unavailable (%s); showing built-in phrases\n", res.Reason)
			}
			return writePhrases(cmd.OutOrStdout(), res.Phrases, env.json)
		},
	}
	prefs.register(cmd)
	return cmd
}

func newExplainCmd(env *cliEnv) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "explain <phrase>",
		Short: "Explain a phrase for the given English level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLevel(level)
			if err != nil {
				return err
			}
			text := env.feed.Feedback(cmd.Context(), strings.Join(args, " "), l)
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", domain.LevelIntermediate.String(), "English level")
	return cmd
}

func newTranslateCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <phrase>",
		Short: "Translate a phrase into Brazilian Portuguese",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), env.feed.Translate(cmd.Context(), strings.Join(args, " ")))
			return nil
		},
	}
}

type phraseJSON struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Translation string  `json:"translation"`
	Difficulty  string  `json:"difficulty"`
	Category    string  `json:"category"`
	Example     *string `json:"example,omitempty"`
}

func writePhrases(w io.Writer, phrases []domain.Phrase, asJSON bool) error {
	if asJSON {
		out := make([]phraseJSON, len(phrases))
		for i, p := range phrases {
			out[i] = phraseJSON{
				ID:          p.ID.String(),
				Text:        p.Text,
				Translation: p.Translation,
				Difficulty:  p.Difficulty.String(),
				Category:    p.Category,
				Example:     p.Example,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, p := range phrases {
		if _, err := fmt.Fprintf(w, "%d. %s\n   %s\n   [%s | %s]\n", i+1, p.Text, p.Translation, p.Difficulty, p.Category); err != nil {
			return err
		}
	}
	return nil
}
