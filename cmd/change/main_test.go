package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/change-calculator/internal/calculator"
)

type countingCalculator struct {
	calls int
	inner calculator.Calculator
}

func (c *countingCalculator) Calculate(amount int) ([]int, error) {
	c.calls++
	return c.inner.Calculate(amount)
}

func runCLI(t *testing.T, args ...string) (int, string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	calc := &countingCalculator{inner: calculator.New()}
	status := run(args, &stdout, &stderr, calc)
	return status, stdout.String(), stderr.String(), calc.calls
}

func TestRunPrintsSummary(t *testing.T) {
	status, stdout, stderr, calls := runCLI(t, "234")

	require.Equal(t, exitOK, status, "stderr: %s", stderr)
	assert.Equal(t, 1, calls)
	assert.Contains(t, stdout, "Your change is £2.34.")
	assert.Contains(t, stdout, "a total of *5* coins")
	assert.Contains(t, stdout, "=>  200, 20, 10, 2, 2  <=")
}

func TestRunZeroAmountPrintsNone(t *testing.T) {
	status, stdout, _, _ := runCLI(t, "0")

	require.Equal(t, exitOK, status)
	assert.Contains(t, stdout, "Your change is £0.00.")
	assert.Contains(t, stdout, "=>  none  <=")
}

func TestRunRejectsMissingOrNonNumericArgument(t *testing.T) {
	for _, args := range [][]string{{}, {"button"}, {"1.5"}, {""}} {
		status, stdout, stderr, calls := runCLI(t, args...)

		assert.Equal(t, exitError, status, "args %q", args)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "usage: change", "args %q", args)
		assert.Zero(t, calls, "calculator must not run for args %q", args)
	}
}

func TestRunRejectsNegativeAmount(t *testing.T) {
	status, stdout, stderr, calls := runCLI(t, "--", "-5")

	assert.Equal(t, exitError, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "You cannot get change for: -5")
	assert.Equal(t, 1, calls)
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	status, _, stderr, calls := runCLI(t, "-5")

	assert.Equal(t, exitError, status)
	assert.NotEmpty(t, stderr)
	assert.Zero(t, calls)
}

func TestRunRejectsInvalidLogLevel(t *testing.T) {
	status, _, stderr, calls := runCLI(t, "--log-level=loud", "10")

	assert.Equal(t, exitError, status)
	assert.Contains(t, stderr, "failed to initialize logger")
	assert.Zero(t, calls)
}

func TestRunHelpExitsCleanly(t *testing.T) {
	status, _, stderr, calls := runCLI(t, "--help")

	assert.Equal(t, exitOK, status)
	assert.Contains(t, stderr, "usage: change")
	assert.Zero(t, calls)
}
