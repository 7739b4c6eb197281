package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/pkg/pathutil"
	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewScratchCmd returns the scratch command.
func NewScratchCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "scratch [key]...",
		Short: "Allocate unique temporary paths for keys",
		Long: `Allocate one unique path per key under the temporary directory, printing
one "key<TAB>path" line per key. The same key given twice in one invocation
maps to the same path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			paths := pathutil.NewScratchPaths(root)

			for _, key := range args {
				p, err := paths.Path(key)
				if err != nil {
					return fmt.Errorf("scratch %q: %w", key, err)
				}

				fmt.Fprintf(cc.OutOrStdout(), "%s\t%s\n", key, p)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", roadpath.Temp().String(), "Root directory for scratch paths")

	return cmd
}
