// Package calculator works out the fewest coins that make up an amount of
// change, given in pence, using a fixed sterling coin table.
package calculator
