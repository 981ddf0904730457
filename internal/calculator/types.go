package calculator

// CoinCount is the number of times a single denomination is used.
type CoinCount struct {
	Denomination int
	Count        int
}

// Breakdown summarises a coin sequence. Total is the value of all coins and
// Coins is how many were handed out.
type Breakdown struct {
	Counts []CoinCount
	Total  int
	Coins  int
}

// Calculator describes the behaviour required from a change calculator.
type Calculator interface {
	Calculate(amount int) ([]int, error)
}
