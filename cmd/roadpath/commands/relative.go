package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewRelativeCmd returns the relative command.
func NewRelativeCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "relative [path]...",
		Short: "Express paths relative to a base directory",
		Long: `Express paths relative to a base directory, which defaults to the current
working directory. Paths outside the base's subtree are an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			for _, arg := range args {
				rel, err := roadpath.Relative(arg, base)
				if err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				fmt.Fprintln(cc.OutOrStdout(), rel)
			}

			if merr != nil {
				return fmt.Errorf("relative: %w", merr)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base directory (defaults to the current working directory)")

	return cmd
}
