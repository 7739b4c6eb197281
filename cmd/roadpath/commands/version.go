package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/internal/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the roadpath CLI",
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintln(cc.OutOrStdout(), version.GetVersionString())
		},
	}
}
