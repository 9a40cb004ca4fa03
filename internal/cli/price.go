package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"treasurysoa/internal/fracprice"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Encode or decode 1/256th fractional bond prices",
}

var priceEncodeCmd = &cobra.Command{
	Use:   "encode [decimal]",
	Short: "Encode a decimal price into handle-and-ticks notation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("parse price: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), fracprice.Encode(p))
		return nil
	},
}

var priceDecodeCmd = &cobra.Command{
	Use:   "decode [handle-ticks]",
	Short: "Decode handle-and-ticks notation into a decimal price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := fracprice.Decode(args[0])
		if err != nil {
			return fmt.Errorf("decode price: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
		return nil
	},
}

func init() {
	priceCmd.AddCommand(priceEncodeCmd)
	priceCmd.AddCommand(priceDecodeCmd)
}
