package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackroad/roadpath/pkg/pathutil"
	"github.com/blackroad/roadpath/pkg/roadpath"
)

// NewResolveCmd returns the resolve command.
func NewResolveCmd() *cobra.Command {
	var (
		within  string
		lexical bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [path]...",
		Short: "Resolve paths to canonical absolute form",
		Long: `Resolve paths against the filesystem, following symlinks and collapsing
. and .. segments. With --within, each path is additionally required to stay
inside the given root directory. With --lexical, the filesystem is not
consulted and symlinks are not followed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			results := make([]string, len(args))

			var eg errgroup.Group

			for i, arg := range args {
				i, arg := i, arg

				eg.Go(func() error {
					var (
						resolved string
						err      error
					)

					switch {
					case lexical:
						resolved, err = roadpath.Absolute(arg)
					case within != "":
						resolved, err = pathutil.ResolveWithin(".", within, arg)
					default:
						resolved, err = roadpath.Resolve(arg)
					}

					if err != nil {
						return fmt.Errorf("resolve %q: %w", arg, err)
					}

					results[i] = resolved

					return nil
				})
			}

			if err := eg.Wait(); err != nil {
				return err
			}

			for _, r := range results {
				fmt.Fprintln(cc.OutOrStdout(), r)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&within, "within", "", "Require results to stay inside this root directory")
	cmd.Flags().BoolVar(&lexical, "lexical", false, "Resolve without consulting the filesystem")

	err := cmd.MarkFlagDirname("within")
	if err != nil {
		panic(err)
	}

	return cmd
}
