package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintkit/starfix/internal/log"
	"github.com/lintkit/starfix/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report wildcard imports without modifying files",
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
		logger.Debug("checking project", "name", proj.Name, "type", proj.Type, "target", target)

		runner := project.NewRunner(cfg, false, logger)
		summary, findings, err := runner.Run(cmd.Context(), target)
		if err != nil {
			return err
		}

		for _, finding := range findings {
			fmt.Printf("%s:%d: wildcard import %s (use explicit imports)\n",
				finding.Path, finding.Line, finding.Wildcard)
			if verbose {
				for _, op := range finding.Edit.Ops {
					fmt.Printf("    %s %s\n", op.Kind, op.Spec)
				}
			}
		}
		logger.Debug("check complete",
			"files", summary.Files, "clean", summary.Clean,
			"skipped", summary.Skipped, "findings", summary.Findings,
			"failed", summary.Failed)

		if summary.Failed > 0 {
			return fmt.Errorf("%d file(s) could not be analyzed", summary.Failed)
		}
		if summary.Findings > 0 {
			os.Exit(1)
		}
		return nil
	},
}
