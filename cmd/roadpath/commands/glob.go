package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewGlobCmd returns the glob command.
func NewGlobCmd() *cobra.Command {
	var (
		root      string
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "glob [pattern]",
		Short: "List paths matching a glob pattern",
		Example: `  roadpath glob '*.txt'
  roadpath glob --root /var/log --recursive '*.log'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			p := roadpath.New(root)

			var (
				matches []roadpath.Path
				err     error
			)

			if recursive {
				matches, err = p.RGlob(args[0])
			} else {
				matches, err = p.Glob(args[0])
			}

			if err != nil {
				return fmt.Errorf("glob: %w", err)
			}

			slog.Debug("glob complete", "pattern", args[0], "root", root, "matches", len(matches))

			for _, m := range matches {
				fmt.Fprintln(cc.OutOrStdout(), m)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Directory to glob in")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "Match the pattern at any depth")

	err := cmd.MarkFlagDirname("root")
	if err != nil {
		panic(err)
	}

	return cmd
}
