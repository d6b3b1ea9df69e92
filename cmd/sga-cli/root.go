package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/config"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/core"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/logging"
)

// env is what every subcommand needs after the root has parsed its flags.
type env struct {
	configPath string
	locale     string
	offline    bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	lookup *catalog.Lookup
}

func newRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:           "sga-cli",
		Short:         "Check installed software for newer versions",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `sga-cli looks up software names in the winget, Chocolatey and
GitHub release catalogs and reports which installed versions are outdated.

Commands:
  check      Check an inventory export (CSV or JSON)
  lookup     Look up the latest version of one program
  normalize  Show the lookup key derived from a name
  compare    Compare two version strings
  suggest    Suggest known catalog keys for a name`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "config file (default ./config.yml)")
	flags.StringVar(&e.locale, "locale", "", "message language: en, pt or auto")
	flags.BoolVar(&e.offline, "offline", false, "use the built-in offline catalog")
	flags.BoolVarP(&e.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newCheckCmd(e),
		newLookupCmd(e),
		newNormalizeCmd(),
		newCompareCmd(),
		newSuggestCmd(e),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the catalogs.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFrom(e.configPath)
	if err != nil {
		return err
	}
	if e.locale != "" {
		cfg.Locale = e.locale
	}
	if e.offline {
		cfg.Catalogs.Offline = true
	}

	// Logs go to stderr; keep them out of the way unless asked for.
	level := "warn"
	if e.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, true)
	if err != nil {
		return err
	}

	i18n.Init(cfg.Locale)
	e.cfg = cfg
	e.logger = logger
	e.lookup = catalog.NewLookup(core.NewRegistry(cfg, logger), logger)
	return nil
}
