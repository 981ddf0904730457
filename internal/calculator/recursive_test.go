package calculator

// calculateRecursive is the reference formulation: each denomination is
// deducted by recursing until it no longer fits the remaining amount.
func calculateRecursive(amount int) ([]int, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	coins := []int{}
	remaining := amount
	for _, coin := range denominations {
		if remaining == 0 {
			break
		}
		coins, remaining = deductRecursively(coin, remaining, coins)
	}
	return coins, nil
}

func deductRecursively(coin, remaining int, coins []int) ([]int, int) {
	if coin > remaining {
		return coins, remaining
	}
	return deductRecursively(coin, remaining-coin, append(coins, coin))
}
