package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/clearsig/clarity/pkg/analysis"
	"github.com/clearsig/clarity/pkg/data"
)

const batchConcurrencyDefault = 4

var (
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "File with one statement per line (- for stdin)",
		Value:   "-",
	}

	concurrencyFlag = &cli.IntFlag{
		Name:  "concurrency",
		Usage: "Number of statements analyzed in parallel",
		Value: batchConcurrencyDefault,
	}

	batchCmd = &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Analyze multiple statements, one per line",
		UsageText: `clarity batch --file statements.txt
   cat statements.txt | clarity batch`,
		HideHelpCommand: true,
		Action:          cmdBatch,
		Flags: []cli.Flag{
			fileFlag,
			concurrencyFlag,
			noSaveFlag,
			formatFlag,
		},
	}
)

type batchSummary struct {
	Analyzed   int                `json:"analyzed" yaml:"analyzed"`
	AvgClarity float64            `json:"avg_clarity" yaml:"avg_clarity"`
	Reports    []*analysis.Report `json:"reports" yaml:"reports"`
}

func cmdBatch(c *cli.Context) error {
	applyFlags(c)
	statements, err := readStatements(c.String(fileFlag.Name))
	if err != nil {
		return err
	}
	if len(statements) == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	workers := c.Int(concurrencyFlag.Name)
	if workers <= 0 {
		workers = batchConcurrencyDefault
	}

	reports := make([]*analysis.Report, len(statements))
	g, _ := errgroup.WithContext(c.Context)
	g.SetLimit(workers)

	for i, s := range statements {
		g.Go(func() error {
			r, err := cfg.Analyzer.Analyze(s)
			if err != nil {
				return fmt.Errorf("failed to analyze line %d: %w", i+1, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !c.Bool(noSaveFlag.Name) {
		if err := data.SaveReports(cfg.DB, reports); err != nil {
			return fmt.Errorf("failed to save analyses: %w", err)
		}
		slog.Debug("batch saved", "count", len(reports))
	}

	sum := 0.0
	for _, r := range reports {
		sum += r.Entropy.Clarity
	}

	out := &batchSummary{
		Analyzed:   len(reports),
		AvgClarity: sum / float64(len(reports)),
		Reports:    reports,
	}
	if err := encode(out); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func readStatements(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to open statements file: %w", err)
		}
		defer file.Close()
		r = file
	}

	var statements []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		statements = append(statements, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statements: %w", err)
	}
	return statements, nil
}
