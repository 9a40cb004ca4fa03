package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"treasurysoa/internal/fracprice"
)

var idCount int

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate order/inquiry identifiers from the LCG generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := fracprice.NewIDGenerator()
		for i := 0; i < idCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), gen.NextID())
		}
		return nil
	},
}

func init() {
	idCmd.Flags().IntVarP(&idCount, "count", "n", 1, "number of identifiers to generate")
}
