package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "R$"

// Accepted amounts are bounded so exponent input such as "1e80000000" cannot
// expand into a huge fixed-point rendering.
const (
	maxAmountIntegerDigits = 18
	maxAmountScale         = 18
)

var (
	DefaultWithdrawalFee        = decimal.RequireFromString("2.00")
	DefaultDailyWithdrawalLimit = decimal.RequireFromString("1000.00")
)

func FormatMoney(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(2)
}

// ParseAmount reads a user supplied amount. The sign is not checked here:
// non-positive values are rejected by Deposit and Withdraw.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("amount cannot be empty")
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", err)
	}

	if d.Exponent() < -maxAmountScale || d.NumDigits()+int(d.Exponent()) > maxAmountIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, amount)
	}

	return d, nil
}
