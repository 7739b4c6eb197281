package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewCommonCmd returns the common command.
func NewCommonCmd() *cobra.Command {
	var prefix bool

	cmd := &cobra.Command{
		Use:   "common [path]...",
		Short: "Compute the common ancestor of paths",
		Long: `Compute the longest common ancestor directory of the given paths. With
--prefix, compute the character-level common string prefix instead, which
does not respect component boundaries.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			if prefix {
				fmt.Fprintln(cc.OutOrStdout(), roadpath.CommonPrefix(args))

				return nil
			}

			common, err := roadpath.CommonPath(args)
			if err != nil {
				return fmt.Errorf("common: %w", err)
			}

			fmt.Fprintln(cc.OutOrStdout(), common)

			return nil
		},
	}

	cmd.Flags().BoolVar(&prefix, "prefix", false, "Compute the character-level common prefix")

	return cmd
}
