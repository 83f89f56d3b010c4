package cli

import (
	"fmt"
	"path"

	"github.com/urfave/cli/v2"

	"github.com/clearsig/clarity/pkg/catalog"
)

var (
	metaphorNameFlag = &cli.StringFlag{
		Name:     "name",
		Usage:    "Metaphor name (e.g. boundaries, efficiency)",
		Required: true,
	}

	functionKeywordFlag = &cli.StringFlag{
		Name:     "keyword",
		Usage:    "Keyword to match against institutional functions",
		Required: true,
	}

	catalogCmd = &cli.Command{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "List metaphor catalog operations",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "List catalog metaphors",
				Aliases: []string{"l"},
				Action:  cmdCatalogList,
				Flags: []cli.Flag{
					formatFlag,
				},
			},
			{
				Name:    "get",
				Usage:   "Get a specific metaphor with its dependency chain",
				Aliases: []string{"g"},
				Action:  cmdCatalogGet,
				Flags: []cli.Flag{
					metaphorNameFlag,
					formatFlag,
				},
			},
			{
				Name:    "search",
				Usage:   "Search metaphors by institutional function",
				Aliases: []string{"s"},
				Action:  cmdCatalogSearch,
				Flags: []cli.Flag{
					functionKeywordFlag,
					formatFlag,
				},
			},
			{
				Name:   "stats",
				Usage:  "Summarize the catalog",
				Action: cmdCatalogStats,
				Flags: []cli.Flag{
					formatFlag,
				},
			},
			{
				Name:   "init",
				Usage:  "Write the default catalog override file",
				Action: cmdCatalogInit,
			},
		},
	}
)

type metaphorDetail struct {
	*catalog.Metaphor `yaml:",inline"`
	Chain             []string `json:"forced_dependencies,omitempty" yaml:"forced_dependencies,omitempty"`
}

func cmdCatalogList(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	list := cfg.Analyzer.Catalog().Metaphors()
	if err := encode(list); err != nil {
		return fmt.Errorf("error encoding list: %w", err)
	}
	return nil
}

func cmdCatalogGet(c *cli.Context) error {
	applyFlags(c)
	name := c.String(metaphorNameFlag.Name)
	if name == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)
	cat := cfg.Analyzer.Catalog()

	m, ok := cat.Get(name)
	if !ok {
		return fmt.Errorf("metaphor not found: %s", name)
	}

	out := &metaphorDetail{
		Metaphor: m,
		Chain:    cat.Chain(name),
	}
	if err := encode(out); err != nil {
		return fmt.Errorf("error encoding metaphor: %w", err)
	}
	return nil
}

func cmdCatalogSearch(c *cli.Context) error {
	applyFlags(c)
	keyword := c.String(functionKeywordFlag.Name)
	if keyword == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	names := cfg.Analyzer.Catalog().SearchByFunction(keyword)
	if err := encode(names); err != nil {
		return fmt.Errorf("error encoding names: %w", err)
	}
	return nil
}

func cmdCatalogStats(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	stats := cfg.Analyzer.Catalog().Stats()
	if err := encode(stats); err != nil {
		return fmt.Errorf("error encoding stats: %w", err)
	}
	return nil
}

func cmdCatalogInit(c *cli.Context) error {
	target := c.String(catalogFileFlag.Name)
	if target == "" {
		target = path.Join(getHomeDir(), catalog.FileName)
	}

	if err := catalog.WriteDefault(target); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	fmt.Println(target)
	return nil
}
