package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/uniquote/common"
	"github.com/tranvictor/uniquote/quote"
	"github.com/tranvictor/uniquote/ui"
	"github.com/tranvictor/uniquote/util"
)

var (
	PriceRaw      bool
	PriceQuantity string
	PriceAmount   string
)

type priceOptions struct {
	Raw bool
	// Quantity is in raw units of token out.
	Quantity string
	// Amount is in whole units of token out, e.g. 1.5.
	Amount string
}

// quantityOf returns how many raw units of out the user asked to price.
func (o priceOptions) quantityOf(out quote.Token) (*big.Int, error) {
	var (
		quantity *big.Int
		err      error
	)
	switch {
	case o.Quantity != "" && o.Amount != "":
		return nil, errors.New("--quantity and --amount can't be used together")
	case o.Quantity != "":
		quantity, err = util.ParamToBigInt(o.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid --quantity: %w", err)
		}
	case o.Amount != "":
		quantity, err = common.FloatStringToBig(o.Amount, out.Decimals)
		if err != nil {
			return nil, fmt.Errorf("invalid --amount: %w", err)
		}
	default:
		return common.OneUnit(out.Decimals), nil
	}
	if quantity.Sign() <= 0 {
		return nil, quote.ErrInvalidQuantity
	}
	return quantity, nil
}

func runPrice(ctx context.Context, u ui.UI, svc quote.Service, tokenIn, tokenOut string, opts priceOptions) error {
	tokens, err := svc.GetTokens(ctx, []string{tokenIn, tokenOut})
	if err != nil {
		return err
	}
	in, out := tokens[0], tokens[1]

	quantity, err := opts.quantityOf(out)
	if err != nil {
		return err
	}

	stop := u.Spinner(fmt.Sprintf("Quoting %s %s in %s...", common.BigToFloatString(quantity, out.Decimals), out.Symbol, in.Symbol))
	price, err := svc.GetQuote(ctx, tokenIn, tokenOut, quantity)
	stop()
	if err != nil {
		return err
	}

	if opts.Raw {
		u.Critical("%s", price.String())
		return nil
	}
	u.Critical("%s", common.BigToFloatString(price, in.Decimals))
	return nil
}

var priceCmd = &cobra.Command{
	Use:   "price <token_in> <token_out>",
	Short: "Price of token_out quoted in token_in",
	Long: `Print how much token_in it takes to buy one full unit of token_out (for
example 10^18 raw units for WETH). The price is shown in whole token_in
units unless --raw is given, in which case raw token_in units are shown.

Tokens are shorthands from the token table or hex addresses:

  uniquote price usdc weth
  uniquote price dai 0x2260fac5e5542a773aa44fbcfedf7c193bc2c599 --amount 0.5`,
	Args:    cobra.ExactArgs(2),
	PreRunE: CommonTokenArgsPreprocess,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.quoteService()
		if err != nil {
			return err
		}
		return runPrice(cmd.Context(), app.ui, svc, resolvedTokens[0], resolvedTokens[1], priceOptions{
			Raw:      PriceRaw,
			Quantity: strings.TrimSpace(PriceQuantity),
			Amount:   strings.TrimSpace(PriceAmount),
		})
	},
}

func init() {
	priceCmd.Flags().BoolVar(&PriceRaw, "raw", false, "Don't normalize the quoted price to token_in's decimals.")
	priceCmd.Flags().StringVar(&PriceQuantity, "quantity", "", "Raw units of token_out to price, decimal or 0x hex. Defaults to one full unit.")
	priceCmd.Flags().StringVar(&PriceAmount, "amount", "", "Whole units of token_out to price, e.g. 2.5.")
	rootCmd.AddCommand(priceCmd)
}
