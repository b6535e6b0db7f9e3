package commands

import (
	"github.com/spf13/cobra"

	"github.com/lintkit/starfix/config"
	"github.com/lintkit/starfix/project"
)

var (
	cfgFile  string
	verbose  bool
	noCache  bool
	excludes []string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "starfix",
	Short: "starfix - replace Java wildcard imports with explicit imports",
	Long: `starfix finds on-demand ("wildcard") imports in Java sources, works out
which symbols each one actually supplies, and replaces every wildcard import
with the minimal set of explicit single-symbol imports.

Commands:
  check       Report wildcard imports without touching files
  fix         Rewrite files in place

Use "starfix [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <root>/.starfix.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the clean-file cache")
	RootCmd.PersistentFlags().StringArrayVar(&excludes, "exclude", nil, "glob pattern to exclude, repeatable")

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(fixCmd)
}

// resolveTarget turns the optional positional argument into the directory to
// analyze and the project enclosing it.
func resolveTarget(args []string) (string, *project.Project, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	proj, err := project.NewDetector().Detect(path)
	if err != nil {
		return "", nil, err
	}
	return path, proj, nil
}

// loadConfig loads the effective configuration: the --config file when given,
// the project's .starfix.yaml otherwise, with flag overrides applied on top.
func loadConfig(projectRoot string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(projectRoot)
	}
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.Cache = false
	}
	cfg.Exclude = append(cfg.Exclude, excludes...)
	return cfg, nil
}
