package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Pow10 returns 10^decimals as a big int.
func Pow10(decimals uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(decimals), nil)
}

// OneUnit returns the raw amount of one full token with the given number of
// decimals. Example: OneUnit(18) = 1000000000000000000
func OneUnit(decimals uint64) *big.Int {
	return Pow10(decimals)
}

// StringToBigInt parses a base 10 integer string.
func StringToBigInt(str string) (*big.Int, error) {
	result, success := big.NewInt(0).SetString(strings.TrimSpace(str), 10)
	if !success {
		return nil, fmt.Errorf("parsed %s to big int failed", str)
	}
	return result, nil
}

// BigToDecimal converts a raw integer amount to a decimal according to its
// number of decimal digits, without any precision loss.
// Example:
// - BigToDecimal(1100, 3) = 1.1
// - BigToDecimal(1100, 2) = 11
// - BigToDecimal(1100, 5) = 0.011
func BigToDecimal(b *big.Int, decimals uint64) decimal.Decimal {
	return decimalFromBig(b).Shift(-int32(decimals))
}

// BigToFloatString is BigToDecimal rendered as a plain string with trailing
// zeros removed.
func BigToFloatString(value *big.Int, decimals uint64) string {
	return BigToDecimal(value, decimals).String()
}

// FloatStringToBig converts a human readable amount such as "1.5" into raw
// units. Digits beyond the token precision are truncated and exponent
// notation is rejected.
func FloatStringToBig(value string, decimals uint64) (*big.Int, error) {
	if strings.ContainsAny(value, "eE") {
		return nil, fmt.Errorf("couldn't parse %q as a number: exponent notation is not supported", value)
	}
	d, err := decimalFromString(value)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %q as a number: %w", value, err)
	}
	return d.Shift(int32(decimals)).Truncate(0).BigInt(), nil
}

func decimalFromBig(b *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(b, 0)
}

func decimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
