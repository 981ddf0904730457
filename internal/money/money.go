// Package money renders pence amounts and coin lists for people to read.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is the currency sign printed in front of major-unit amounts.
const Symbol = "£"

const noCoins = "none"

// FormatMajor renders an amount in pence as pounds with two decimal places.
func FormatMajor(pence int) string {
	return decimal.New(int64(pence), -2).StringFixed(2)
}

// JoinCoins lists coin values separated by commas, or "none" when empty.
func JoinCoins(coins []int) string {
	if len(coins) == 0 {
		return noCoins
	}
	parts := make([]string, len(coins))
	for i, coin := range coins {
		parts[i] = strconv.Itoa(coin)
	}
	return strings.Join(parts, ", ")
}

// Summary is the human-readable description of a change calculation.
func Summary(pence int, coins []int) string {
	return fmt.Sprintf(
		"\nYour change is %s%s.\n\nIn fewest coins, that would be a total of *%d* coins:\n\n  =>  %s  <=\n\n",
		Symbol, FormatMajor(pence), len(coins), JoinCoins(coins),
	)
}
