// Package batch runs simulations from CSV files. It reads one parameter set
// per input row, validates the whole file before starting, and writes one
// result row per run once every simulation has finished.
package batch
