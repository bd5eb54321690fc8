package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/uniquote/quote"
	"github.com/tranvictor/uniquote/ui"
)

var TokenJSON bool

func runToken(ctx context.Context, u ui.UI, svc quote.Service, address string, asJSON bool) error {
	stop := u.Spinner("Reading token...")
	token, err := svc.GetToken(ctx, address)
	stop()
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(u.Writer()).Encode(token)
	}
	u.KeyValue([][2]string{
		{"Address", token.Address},
		{"Symbol", token.Symbol},
		{"Name", token.Name},
		{"Decimals", fmt.Sprintf("%d", token.Decimals)},
	})
	return nil
}

var tokenCmd = &cobra.Command{
	Use:     "token <token>",
	Short:   "Show the on-chain metadata of a token",
	Long:    ``,
	Args:    cobra.ExactArgs(1),
	PreRunE: CommonTokenArgsPreprocess,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.quoteService()
		if err != nil {
			return err
		}
		return runToken(cmd.Context(), app.ui, svc, resolvedTokens[0], TokenJSON)
	},
}

func init() {
	tokenCmd.Flags().BoolVar(&TokenJSON, "json", false, "Print the token as json.")
	rootCmd.AddCommand(tokenCmd)
}
