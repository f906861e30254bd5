package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDecideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decide <file>",
		Short: "Decide the verification scope for a changed file",
		Long: `Decide computes the blast radius of the changed file over the import
graph and prints the verification decision: NARROW with the affected file
list, or FULL when the change is globally influential or the affected
surface exceeds the threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decision, err := c.app.Decide(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			compact, err := cmd.Flags().GetBool("compact")
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(decision); err != nil {
				return fmt.Errorf("failed to encode decision: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("compact", false, "Emit the decision as a single JSON line")
	return cmd
}
