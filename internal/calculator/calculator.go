package calculator

// denominations lists every coin value in pence. Greedy selection depends on
// the strictly descending order.
var denominations = []int{200, 100, 50, 20, 10, 5, 2, 1}

type greedyCalculator struct{}

// New creates a Calculator that hands out the largest coin first.
func New() Calculator {
	return &greedyCalculator{}
}

// Denominations returns a copy of the coin table, largest first.
func Denominations() []int {
	out := make([]int, len(denominations))
	copy(out, denominations)
	return out
}

func (c *greedyCalculator) Calculate(amount int) ([]int, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	coins := make([]int, 0, estimateCoins(amount))
	remaining := amount
	for _, coin := range denominations {
		if remaining == 0 {
			break
		}
		for remaining >= coin {
			remaining -= coin
			coins = append(coins, coin)
		}
	}

	if remaining != 0 {
		return nil, ErrUnrepresentable
	}
	return coins, nil
}

// Summarize groups a coin sequence into per-denomination counts, preserving
// the order in which denominations first appear.
func Summarize(coins []int) Breakdown {
	b := Breakdown{Counts: []CoinCount{}}
	for _, coin := range coins {
		b.Total += coin
		b.Coins++
		if n := len(b.Counts); n > 0 && b.Counts[n-1].Denomination == coin {
			b.Counts[n-1].Count++
			continue
		}
		b.Counts = append(b.Counts, CoinCount{Denomination: coin, Count: 1})
	}
	return b
}

// estimateCoins sizes the result slice: whole 200s plus at most one coin per
// remaining denomination slot.
func estimateCoins(amount int) int {
	return amount/denominations[0] + len(denominations)
}
