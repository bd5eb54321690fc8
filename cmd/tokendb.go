package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/uniquote/db"
	"github.com/tranvictor/uniquote/quote"
	"github.com/tranvictor/uniquote/ui"
)

var (
	TokenDBMetadata bool
	TokenDBJSON     bool
)

type tokenDBRow struct {
	Symbol   string  `json:"symbol"`
	Address  string  `json:"address"`
	Name     string  `json:"name,omitempty"`
	Decimals *uint64 `json:"decimals,omitempty"`
}

func runTokenDB(ctx context.Context, u ui.UI, svc quote.Service, entries []db.TokenEntry, metadata bool, asJSON bool) error {
	rows := make([]tokenDBRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, tokenDBRow{Symbol: e.Symbol, Address: e.Address})
	}

	if metadata {
		addresses := make([]string, 0, len(entries))
		for _, e := range entries {
			addresses = append(addresses, e.Address)
		}
		stop := u.Spinner(fmt.Sprintf("Reading %d tokens...", len(addresses)))
		tokens, err := svc.GetTokens(ctx, addresses)
		stop()
		if err != nil {
			return err
		}
		mismatches := 0
		for i, token := range tokens {
			if !strings.EqualFold(token.Symbol, rows[i].Symbol) {
				u.Error("%s points to %s whose on-chain symbol is %q", rows[i].Symbol, rows[i].Address, token.Symbol)
				mismatches++
				continue
			}
			decimals := token.Decimals
			rows[i].Name = token.Name
			rows[i].Decimals = &decimals
		}
		if mismatches > 0 {
			return fmt.Errorf("%d token db entries don't match their on-chain symbol", mismatches)
		}
	}

	if asJSON {
		encoder := json.NewEncoder(u.Writer())
		for _, row := range rows {
			if err := encoder.Encode(row); err != nil {
				return err
			}
		}
		return nil
	}

	headers := []string{"Symbol", "Address"}
	if metadata {
		headers = append(headers, "Name", "Decimals")
	}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := []string{row.Symbol, row.Address}
		if metadata {
			line = append(line, row.Name, fmt.Sprintf("%d", *row.Decimals))
		}
		cells = append(cells, line)
	}
	u.Table(headers, cells)
	return nil
}

var tokendbCmd = &cobra.Command{
	Use:   "tokendb",
	Short: "List the token shorthands of the selected network",
	Long: `List every shorthand of the token table ordered by symbol. With
--metadata every token is also read from chain and its on-chain symbol must
match the shorthand, otherwise the command fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc quote.Service
		if TokenDBMetadata {
			var err error
			if svc, err = app.quoteService(); err != nil {
				return err
			}
		}
		return runTokenDB(cmd.Context(), app.ui, svc, app.table.Entries(), TokenDBMetadata, TokenDBJSON)
	},
}

func init() {
	tokendbCmd.Flags().BoolVar(&TokenDBMetadata, "metadata", false, "Also read name and decimals of every token from chain.")
	tokendbCmd.Flags().BoolVar(&TokenDBJSON, "json", false, "Print one json object per token.")
	rootCmd.AddCommand(tokendbCmd)
}
