package cli

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/clearsig/clarity/pkg/analysis"
	"github.com/clearsig/clarity/pkg/catalog"
	"github.com/clearsig/clarity/pkg/data"
	"github.com/clearsig/clarity/pkg/logging"
)

const (
	dirMode      = 0o700
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dbFilePathFlag = &urfave.StringFlag{
		Name:  "db",
		Usage: "Path to the Sqlite history database file",
	}

	catalogFileFlag = &urfave.StringFlag{
		Name:  "catalog",
		Usage: "Path to a YAML catalog override file",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	initLogging(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	DBPath   string
	Debug    bool
	DB       *sql.DB
	Analyzer *analysis.Analyzer
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 "clarity",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for scoring statements for noise, reified metaphors, and tone",
		Flags: []urfave.Flag{
			debugFlag,
			dbFilePathFlag,
			catalogFileFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			analyzeCmd,
			batchCmd,
			restateCmd,
			catalogCmd,
			historyCmd,
			serveCmd,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				initLogging(true)
			}

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			dbPath := c.String(dbFilePathFlag.Name)
			if dbPath == "" {
				dbPath = path.Join(getHomeDir(), data.DataFileName)
			}

			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			cat, err := loadCatalog(c.String(catalogFileFlag.Name))
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				DBPath:   dbPath,
				Debug:    c.Bool(debugFlag.Name),
				DB:       db,
				Analyzer: analysis.New(cat),
			}
			return nil
		},
		After: func(c *urfave.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

// applyFlags promotes command level overrides of the global flags.
func applyFlags(c *urfave.Context) {
	if c.Bool(debugFlag.Name) {
		initLogging(true)
	}
	f := c.String(formatFlag.Name)
	if f == formatYAML || f == "yml" {
		outputFormat = formatYAML
	}
}

// loadCatalog resolves the catalog override: an explicit path must load, the
// default home dir file is used only when present.
func loadCatalog(catalogPath string) (*catalog.Catalog, error) {
	if catalogPath != "" {
		return catalog.Load(catalogPath)
	}
	defaultPath := filepath.Join(getHomeDir(), catalog.FileName)
	if _, err := os.Stat(defaultPath); err == nil {
		return catalog.Load(defaultPath)
	}
	return catalog.Builtin(), nil
}

func initLogging(debug bool) {
	level := "info"
	if debug {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)
}

func getHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}

	dirPath := filepath.Join(home, ".clarity")
	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			slog.Debug("error creating dir", "path", dirPath, "error", err)
			return home
		}
	}
	return dirPath
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
