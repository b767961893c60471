package packup

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/packup/packup/pkg/config"
	"github.com/packup/packup/pkg/core"
	"github.com/packup/packup/pkg/display"
	"github.com/packup/packup/pkg/logging"
)

func newBundleCmd() *cobra.Command {
	var (
		root   string
		dir    string
		output string
	)

	cmd := &cobra.Command{
		Use:     "bundle [files...]",
		Short:   MsgBundleShort,
		Long:    MsgBundleLong,
		Example: MsgBundleExample,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.bundle")

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("dir") {
				overrides["bundle.dir"] = dir
			}
			if cmd.Flags().Changed("output") {
				overrides["bundle.output"] = output
			}

			cfg, err := config.Load(root, overrides)
			if err != nil {
				return err
			}

			files := args
			if len(files) == 0 {
				files = cfg.Bundle.Files
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info().
				Str("root", root).
				Int("files", len(files)).
				Str("output", cfg.Bundle.Output).
				Msg("Starting bundle")

			result, err := core.Bundle(ctx, core.BundleOptions{
				Root:   root,
				Dir:    cfg.Bundle.Dir,
				Files:  files,
				Output: cfg.Bundle.Output,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := display.NewRenderer(out, format).RenderResult(result); err != nil {
				return err
			}

			// Upload instructions are for humans, not for pipelines.
			if format != display.FormatJSON {
				fmt.Fprintln(out)
				fmt.Fprint(out, display.RenderInstructions(format))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", MsgFlagRoot)
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagDir)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}
