package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/clearsig/clarity/pkg/data"
)

const historyResultLimitDefault = 100

var (
	historyLimitFlag = &cli.IntFlag{
		Name:     "limit",
		Usage:    "Limits number of results returned",
		Value:    historyResultLimitDefault,
		Required: false,
	}

	historyOffsetFlag = &cli.IntFlag{
		Name:     "offset",
		Usage:    "Number of results to skip (for paging)",
		Required: false,
	}

	historyLikeFlag = &cli.StringFlag{
		Name:     "like",
		Usage:    "Fuzzy search on statement and restatement text",
		Required: false,
	}

	historySinceFlag = &cli.StringFlag{
		Name:     "since",
		Usage:    "Analyses since date (YYYY-MM-DD)",
		Required: false,
	}

	historyMinClarityFlag = &cli.Float64Flag{
		Name:     "min-clarity",
		Usage:    "Minimum clarity score (0 to 1)",
		Required: false,
	}

	historyMaxClarityFlag = &cli.Float64Flag{
		Name:     "max-clarity",
		Usage:    "Maximum clarity score (0 to 1)",
		Required: false,
	}

	historyMetaphorFlag = &cli.StringFlag{
		Name:     "metaphor",
		Usage:    "Only analyses that triggered the named metaphor",
		Required: false,
	}

	analysisIDFlag = &cli.StringFlag{
		Name:     "id",
		Usage:    "Analysis ID",
		Required: true,
	}

	pruneBeforeFlag = &cli.StringFlag{
		Name:     "before",
		Usage:    "Delete analyses created before this date (YYYY-MM-DD)",
		Required: true,
	}

	historyCmd = &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "List analysis history operations",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "List recorded analyses",
				Aliases: []string{"l"},
				Action:  cmdHistoryList,
				Flags: []cli.Flag{
					historyLikeFlag,
					historySinceFlag,
					historyMinClarityFlag,
					historyMaxClarityFlag,
					historyMetaphorFlag,
					historyLimitFlag,
					historyOffsetFlag,
					formatFlag,
				},
			},
			{
				Name:    "get",
				Usage:   "Get a specific recorded analysis",
				Aliases: []string{"g"},
				Action:  cmdHistoryGet,
				Flags: []cli.Flag{
					analysisIDFlag,
					formatFlag,
				},
			},
			{
				Name:   "prune",
				Usage:  "Delete recorded analyses older than a date",
				Action: cmdHistoryPrune,
				Flags: []cli.Flag{
					pruneBeforeFlag,
				},
			},
			{
				Name:   "state",
				Usage:  "Summarize the analysis log",
				Action: cmdHistoryState,
				Flags: []cli.Flag{
					formatFlag,
				},
			},
		},
	}
)

func optional(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}

func optionalFloat(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}

func cmdHistoryList(c *cli.Context) error {
	applyFlags(c)
	limit := c.Int(historyLimitFlag.Name)
	if limit <= 0 || limit > historyResultLimitDefault {
		limit = historyResultLimitDefault
	}

	q := &data.AnalysisSearchCriteria{
		Like:       optional(c.String(historyLikeFlag.Name)),
		Since:      optional(c.String(historySinceFlag.Name)),
		MinClarity: optionalFloat(c, historyMinClarityFlag.Name),
		MaxClarity: optionalFloat(c, historyMaxClarityFlag.Name),
		Metaphor:   optional(c.String(historyMetaphorFlag.Name)),
		Limit:      limit,
		Offset:     c.Int(historyOffsetFlag.Name),
	}

	slog.Debug("search history", "criteria", q)

	cfg := getConfig(c)

	list, err := data.SearchAnalyses(cfg.DB, q)
	if err != nil {
		return fmt.Errorf("failed to query history: %w", err)
	}

	if err := encode(list); err != nil {
		return fmt.Errorf("error encoding list: %w", err)
	}
	return nil
}

func cmdHistoryGet(c *cli.Context) error {
	applyFlags(c)
	id := c.String(analysisIDFlag.Name)
	if id == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	rec, err := data.GetAnalysis(cfg.DB, id)
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("analysis not found: %s", id)
	}

	if err := encode(rec); err != nil {
		return fmt.Errorf("error encoding analysis: %w", err)
	}
	return nil
}

func cmdHistoryPrune(c *cli.Context) error {
	before := c.String(pruneBeforeFlag.Name)
	if before == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	deleted, err := data.PruneAnalyses(cfg.DB, before)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	fmt.Printf("deleted %d analyses\n", deleted)
	return nil
}

func cmdHistoryState(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	state, err := data.GetDataState(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to get data state: %w", err)
	}

	if err := encode(state); err != nil {
		return fmt.Errorf("error encoding state: %w", err)
	}
	return nil
}
