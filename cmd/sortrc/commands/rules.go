package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates a new rules command
func NewRulesCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective extension rule table",
		Long: `Rules prints the rule table a run would classify with: the built-in
defaults merged with any overrides from the config file, plus the two
fallback classifications.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			var table *rules.Table
			if cfg.Source == "" && cfg.Destination == "" {
				table = rules.Default()
			} else {
				table, err = cfg.RuleTable()
				if err != nil {
					return err
				}
			}

			data := pterm.TableData{{"extension", "category", "subcategory"}}
			for _, ext := range table.Extensions() {
				c := table.Classify(ext)
				data = append(data, []string{ext, c.Category, c.Subcategory})
			}
			data = append(data,
				[]string{"(none)", rules.NoExtension.Category, rules.NoExtension.Subcategory},
				[]string{"(other)", rules.Unknown.Category, rules.Unknown.Subcategory},
			)

			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return errors.Errorf("rendering rule table: %w", err)
			}
			return nil
		},
	}

	return cmd
}
