package common

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	ETHDecimals  = 18 // ETH has 18 decimals (wei)
	GweiDecimals = 9  // gwei has 9 decimals relative to wei
)

// WeiToETH converts wei to an ETH string without float precision loss
func WeiToETH(wei *big.Int) string {
	return formatWithDecimals(wei, ETHDecimals)
}

// ETHToWei converts an ETH string to wei without float precision loss
func ETHToWei(eth string) (*big.Int, error) {
	return parseWithDecimals(eth, ETHDecimals)
}

// WeiToGwei converts wei to a gwei string without float precision loss
func WeiToGwei(wei *big.Int) string {
	return formatWithDecimals(wei, GweiDecimals)
}

// GweiToWei converts a gwei string to wei without float precision loss
func GweiToWei(gwei string) (*big.Int, error) {
	return parseWithDecimals(gwei, GweiDecimals)
}

// formatWithDecimals converts an integer to a decimal string by inserting a
// decimal point. Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value *big.Int, decimals int) string {
	if value == nil {
		value = new(big.Int)
	}
	s := value.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	out := s[:pos] + "." + s[pos:]
	if neg {
		out = "-" + out
	}
	return out
}

// parseWithDecimals converts a decimal string to an integer by removing the
// decimal point. Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty string")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative amount")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		// No decimal point - multiply by 10^decimals
		n, ok := new(big.Int).SetString(parts[0], 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount: %s", s)
		}
		return n.Mul(n, pow10(decimals)), nil
	}

	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	// Combine and parse
	combined := whole + frac
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %s", s)
	}
	return n, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
