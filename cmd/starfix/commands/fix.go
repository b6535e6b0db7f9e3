package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintkit/starfix/internal/log"
	"github.com/lintkit/starfix/project"
)

var fixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Rewrite files, replacing wildcard imports in place",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Default()
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		target, proj, err := resolveTarget(args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(proj.RootPath)
		if err != nil {
			return err
		}
		logger.Debug("fixing project", "name", proj.Name, "type", proj.Type, "target", target)

		runner := project.NewRunner(cfg, true, logger)
		summary, findings, err := runner.Run(cmd.Context(), target)
		if err != nil {
			return err
		}

		for _, finding := range findings {
			fmt.Printf("%s: replaced %s\n", finding.Path, finding.Wildcard)
		}
		fmt.Printf("%d file(s) scanned, %d fixed\n", summary.Files, summary.Fixed)

		if summary.Failed > 0 {
			return fmt.Errorf("%d file(s) could not be fixed", summary.Failed)
		}
		return nil
	},
}
