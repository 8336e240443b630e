package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/profile"
)

func newQuickConfigCmd(root *rootOptions) *cobra.Command {
	var enhance []string

	cmd := &cobra.Command{
		Use:   "quick-config",
		Short: "Apply the recommended segment layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enhancements, err := parseEnhancements(enhance)
			if err != nil {
				return err
			}

			store := config.NewStore(root.configPath)
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			profile.ApplyQuick(&cfg)
			for _, enh := range enhancements {
				profile.ApplyEnhancement(&cfg, enh)
			}

			if err := store.Save(cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied quick config to %s\n", store.Path())
			for _, enh := range enhancements {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied enhancement: %s\n", enh)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&enhance, "enhance", nil, "Enhancements to layer on: git, observability")
	return cmd
}

// parseEnhancements validates the flag values and drops duplicates while
// keeping first-seen order.
func parseEnhancements(values []string) ([]profile.Enhancement, error) {
	var out []profile.Enhancement
	seen := map[profile.Enhancement]bool{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		enh, ok := profile.ParseEnhancement(v)
		if !ok {
			return nil, fmt.Errorf("unknown enhancement %q (want git or observability)", v)
		}
		if seen[enh] {
			continue
		}
		seen[enh] = true
		out = append(out, enh)
	}
	return out, nil
}
