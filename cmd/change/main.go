package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/change-calculator/internal/calculator"
	"github.com/eugenenazirov/change-calculator/internal/logging"
	"github.com/eugenenazirov/change-calculator/internal/money"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, calculator.New()))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, calc calculator.Calculator) int {
	terminated := -1
	app := kingpin.New("change", "Works out the fewest coins needed to give an amount of change.").
		UsageWriter(stderr).
		ErrorWriter(stderr).
		Terminate(func(status int) { terminated = status })
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").Default("warn").String()
	rawAmount := app.Arg("amount", "Change owed in pence, e.g. 49. Pass negative values after --.").String()

	if _, err := app.Parse(args); err != nil {
		app.Errorf("%v", err)
		app.Usage(nil)
		return exitError
	}
	if terminated >= 0 {
		return terminated
	}

	amount, err := strconv.Atoi(strings.TrimSpace(*rawAmount))
	if err != nil {
		app.Usage(nil)
		return exitError
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		app.Errorf("failed to initialize logger: %v", err)
		return exitError
	}
	defer func() {
		_ = logger.Sync()
	}()

	coins, err := calc.Calculate(amount)
	if err != nil {
		if errors.Is(err, calculator.ErrInvalidAmount) {
			logger.Debug("rejected change amount", zap.Int("amount", amount), zap.Error(err))
			fmt.Fprintf(stderr, "You cannot get change for: %d\n", amount)
			return exitError
		}
		logger.Error("change calculation failed", zap.Int("amount", amount), zap.Error(err))
		fmt.Fprintf(stderr, "Unable to calculate change for %d: %v\n", amount, err)
		return exitError
	}

	logger.Debug("change calculated", zap.Int("amount", amount), zap.Int("coins", len(coins)))
	fmt.Fprint(stdout, money.Summary(amount, coins))
	return exitOK
}
