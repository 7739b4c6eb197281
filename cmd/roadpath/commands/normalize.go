package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewNormalizeCmd returns the normalize command.
func NewNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [path]...",
		Short: "Collapse redundant separators and . / .. segments",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cc *cobra.Command, args []string) {
			for _, arg := range args {
				fmt.Fprintln(cc.OutOrStdout(), roadpath.Normalize(arg))
			}
		},
	}
}
