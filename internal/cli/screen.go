package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/dossier/internal/logging"
	"github.com/ppiankov/dossier/internal/pipeline"
	"github.com/ppiankov/dossier/internal/screen"
	"github.com/ppiankov/dossier/internal/textconv"
)

var screenSanctions string

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen <name>",
	Short: "Check one name against a sanctions list",
	Long: `Screen normalizes a person's name and checks it against every sanctions entry
with the ordered matchers (exact, substring, initial + surname). The first
entry that matches is printed together with the matcher that fired.

Example:
  dossier screen "Jane Doe" --sanctions ofac.txt
  dossier screen "J. Doe" --sanctions https://example.com/sanctions.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVar(&screenSanctions, "sanctions", "", "sanctions list, one name per line (file or URL)")
	_ = screenCmd.MarkFlagRequired("sanctions")
}

func runScreen(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTP.Timeout)
	defer cancel()

	doc, err := pipeline.NewLoader(cfg, logger).Load(ctx, screenSanctions)
	if err != nil {
		return fmt.Errorf("load sanctions: %w", err)
	}
	text, err := textconv.NewRegistry().ToText(doc.Data, doc.Ext)
	if err != nil {
		return fmt.Errorf("convert sanctions: %w", err)
	}
	entries := screen.ParseEntries(text)
	progress(cmd, cfg, "✓ Loaded %d sanctions entries\n", len(entries))

	out := cmd.OutOrStdout()
	match, ok := screen.NewScreener(cfg.Screening.Industries).MatchName(name, entries)
	if !ok {
		fmt.Fprintf(out, "CLEAR: %q matches no sanctions entry (%d checked)\n", name, len(entries))
		return nil
	}
	fmt.Fprintf(out, "HIT: %q matches %q (matcher: %s)\n", name, match.Entry, match.Matcher)
	return nil
}
