package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tranvictor/uniquote/resolver"
)

// resolvedTokens holds the token arguments of the running command after
// resolution, in argument order.
var resolvedTokens []string

// resolveTokens resolves every arg and reports all failures at once.
func resolveTokens(r *resolver.Resolver, args []string) ([]string, error) {
	addresses := make([]string, 0, len(args))
	errs := []error{}
	for _, arg := range args {
		res := r.Validate(arg)
		if !res.OK() {
			errs = append(errs, res.Err)
			continue
		}
		addresses = append(addresses, res.Address)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return addresses, nil
}

func CommonTokenArgsPreprocess(cmd *cobra.Command, args []string) (err error) {
	resolvedTokens, err = resolveTokens(app.resolver, args)
	return err
}
