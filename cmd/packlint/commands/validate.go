package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packlint/internal/app"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate a built package against the packaging conventions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath := ""
			if len(args) == 1 {
				manifestPath = args[0]
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			return c.app.Validate(cmd.Context(), app.ValidateOptions{
				ManifestPath: manifestPath,
				JSON:         jsonOut,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Render the report as JSON")
	return cmd
}
