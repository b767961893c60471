package packup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/packup/packup/pkg/config"
	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/paths"
)

func newGenConfigCmd() *cobra.Command {
	var (
		root  string
		write bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultTOML())
				return nil
			}

			target := filepath.Join(root, paths.ConfigFileName)
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", target)
			}
			if err := os.WriteFile(target, []byte(config.DefaultTOML()), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Written %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", MsgFlagRoot)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
