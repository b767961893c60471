package packup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packup/packup/pkg/config"
)

func newRulesCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root, nil)
			if err != nil {
				return err
			}

			source := "built-in defaults"
			if pf, found, err := config.FindProjectFile(root); err == nil && found {
				source = pf.Path
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exclusion rules (%s):\n", source)
			for _, r := range cfg.RuleSet().Rules() {
				fmt.Fprintf(out, "  %-10s %s\n", r.Kind(), r.Pattern())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", MsgFlagRoot)

	return cmd
}
