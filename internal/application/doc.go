// Package application wires the calculator, HTTP handlers, router and server
// together so the server entrypoint only deals with flags and shutdown.
package application
