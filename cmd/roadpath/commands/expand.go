package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewExpandCmd returns the expand command.
func NewExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [path]...",
		Short: "Expand ~ and environment variables in paths",
		Long: `Expand a leading ~ or ~user to the matching home directory, then substitute
$VAR and ${VAR} environment variable references.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cc *cobra.Command, args []string) {
			for _, arg := range args {
				fmt.Fprintln(cc.OutOrStdout(), roadpath.Expand(arg))
			}
		},
	}
}
