package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blackroad/roadpath/pkg/roadpath"
)

type parsedPath struct {
	Path     string   `yaml:"path"`
	Drive    string   `yaml:"drive,omitempty"`
	Root     string   `yaml:"root,omitempty"`
	Parts    []string `yaml:"parts"`
	Name     string   `yaml:"name"`
	Stem     string   `yaml:"stem"`
	Suffix   string   `yaml:"suffix,omitempty"`
	Suffixes []string `yaml:"suffixes,omitempty"`
	Parent   string   `yaml:"parent"`
}

// NewParseCmd returns the parse command.
func NewParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [path]...",
		Short: "Decompose paths into their components",
		Example: `  roadpath parse /home/user/documents/file.txt
  roadpath parse src/archive.tar.gz /etc/hosts`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			out := make([]parsedPath, 0, len(args))

			for _, arg := range args {
				parts := roadpath.New(arg).Parse()
				out = append(out, parsedPath{
					Path:     arg,
					Drive:    parts.Drive,
					Root:     parts.Root,
					Parts:    parts.Parts,
					Name:     parts.Name,
					Stem:     parts.Stem,
					Suffix:   parts.Suffix,
					Suffixes: parts.Suffixes,
					Parent:   parts.Parent,
				})
			}

			data, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("marshal YAML: %w", err)
			}

			fmt.Fprint(cc.OutOrStdout(), string(data))

			return nil
		},
	}
}
