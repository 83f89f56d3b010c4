package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var restateCmd = &cli.Command{
	Name:    "restate",
	Aliases: []string{"r"},
	Usage:   "Rewrite a statement with reified terms replaced by their functional forms",
	UsageText: `clarity restate "Centralized systems are more efficient"
   echo "AI must maintain boundaries" | clarity restate`,
	HideHelpCommand: true,
	Action:          cmdRestate,
	Flags: []cli.Flag{
		textFlag,
		formatFlag,
	},
}

type restateResult struct {
	Statement   string `json:"statement" yaml:"statement"`
	Restatement string `json:"restatement" yaml:"restatement"`
}

func cmdRestate(c *cli.Context) error {
	applyFlags(c)
	statement, err := readStatement(c)
	if err != nil {
		return err
	}
	if statement == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	restated, err := cfg.Analyzer.Restate(statement)
	if err != nil {
		return fmt.Errorf("failed to restate statement: %w", err)
	}

	out := &restateResult{
		Statement:   statement,
		Restatement: restated,
	}
	if err := encode(out); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
