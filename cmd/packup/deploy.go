package packup

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/packup/packup/pkg/config"
	"github.com/packup/packup/pkg/core"
	"github.com/packup/packup/pkg/display"
	"github.com/packup/packup/pkg/logging"
)

func newDeployCmd() *cobra.Command {
	var (
		output  string
		workers int
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:     "deploy [root]",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		Example: MsgDeployExample,
		GroupID: "build",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.deploy")

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			// Flags beat packup.toml only when actually set.
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("output") {
				overrides["deploy.output"] = output
			}
			if cmd.Flags().Changed("workers") {
				overrides["deploy.workers"] = workers
			}

			cfg, err := config.Load(root, overrides)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info().
				Str("root", root).
				Str("output", cfg.Deploy.Output).
				Bool("dryRun", dryRun).
				Msg("Starting deploy")

			result, err := core.Deploy(ctx, core.DeployOptions{
				Root:    root,
				Output:  cfg.Deploy.Output,
				Rules:   cfg.RuleSet(),
				Workers: cfg.Deploy.Workers,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			return display.NewRenderer(cmd.OutOrStdout(), format).RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().IntVar(&workers, "workers", 0, MsgFlagWorkers)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}
