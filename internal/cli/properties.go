package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/omnihola/ashby-plot/pkg/materials"
)

// propertiesCommand creates the properties command listing the built-in
// property table with units and axis labels.
func (c *CLI) propertiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the built-in material properties and units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := materials.DefaultUnits()

			props := make([]string, 0, len(units))
			for p := range units {
				props = append(props, string(p))
			}
			sort.Strings(props)

			printInfo("Built-in properties")
			for _, p := range props {
				label, err := units.AxisLabel(materials.Property(p))
				if err != nil {
					return err
				}
				printKeyValue(p, label)
			}
			return nil
		},
	}
}
