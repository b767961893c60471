// Package packup wires the archive pipelines into a cobra CLI. Each
// command is built by a newXxxCmd constructor so tests can create a
// fresh command tree per case.
package packup

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/packup/packup/internal/version"
	"github.com/packup/packup/pkg/display"
	"github.com/packup/packup/pkg/logging"
)

// NewRootCmd creates and returns the root command with all
// subcommands attached.
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "packup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "build", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newBundleCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolveFormat turns the persistent --format flag into a concrete
// output format, detecting terminal capabilities for "auto".
func resolveFormat(cmd *cobra.Command) (display.Format, error) {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := display.ParseFormat(raw)
	if err != nil {
		return display.FormatText, err
	}
	return format.Resolve(os.Stdout), nil
}
