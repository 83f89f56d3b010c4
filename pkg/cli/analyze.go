package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/clearsig/clarity/pkg/analysis"
	"github.com/clearsig/clarity/pkg/data"
)

var (
	textFlag = &cli.StringFlag{
		Name:    "text",
		Aliases: []string{"t"},
		Usage:   "Statement to analyze (also accepted as argument or on stdin)",
	}

	noSaveFlag = &cli.BoolFlag{
		Name:  "no-save",
		Usage: "Do not record the analysis in the history log",
	}

	locksFlag = &cli.BoolFlag{
		Name:  "locks",
		Usage: "Include variable lock suggestions in the output",
	}

	restateFlag = &cli.BoolFlag{
		Name:  "restate",
		Usage: "Include the functional restatement even when clarity is above the threshold",
	}

	analyzeCmd = &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Analyze a single statement",
		UsageText: `clarity analyze "Centralized systems are more efficient"
   echo "AI must maintain boundaries" | clarity analyze
   clarity analyze --locks -t "Individual consciousness cannot be shared"`,
		HideHelpCommand: true,
		Action:          cmdAnalyze,
		Flags: []cli.Flag{
			textFlag,
			noSaveFlag,
			locksFlag,
			restateFlag,
			formatFlag,
		},
	}
)

type analyzeResult struct {
	*analysis.Report `yaml:",inline"`
	Locks            []*analysis.LockSuggestion `json:"lock_suggestions,omitempty" yaml:"lock_suggestions,omitempty"`
}

func cmdAnalyze(c *cli.Context) error {
	applyFlags(c)
	statement, err := readStatement(c)
	if err != nil {
		return err
	}
	if statement == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	r, err := cfg.Analyzer.Analyze(statement)
	if err != nil {
		return fmt.Errorf("failed to analyze statement: %w", err)
	}

	if c.Bool(restateFlag.Name) && r.Restatement == "" {
		restated, err := cfg.Analyzer.Restate(statement)
		if err != nil {
			return fmt.Errorf("failed to restate statement: %w", err)
		}
		forced := *r
		forced.Restatement = restated
		r = &forced
	}

	out := &analyzeResult{Report: r}
	if c.Bool(locksFlag.Name) {
		locks, err := cfg.Analyzer.SuggestLocks(statement)
		if err != nil {
			return fmt.Errorf("failed to suggest locks: %w", err)
		}
		out.Locks = locks
	}

	if !c.Bool(noSaveFlag.Name) {
		if err := data.SaveReport(cfg.DB, r); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		slog.Debug("analysis saved", "id", r.ID, "clarity", r.Entropy.Clarity)
	}

	if err := encode(out); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// readStatement resolves the input statement from the flag, the first
// argument, or stdin, in that order.
func readStatement(c *cli.Context) (string, error) {
	if s := strings.TrimSpace(c.String(textFlag.Name)); s != "" {
		return s, nil
	}
	if s := strings.TrimSpace(c.Args().First()); s != "" {
		return s, nil
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read statement from stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
