// Package logger provides small slog constructors for the CLI.
//
// New builds a text-formatted logger at a chosen level for diagnostics
// (skipped files, load warnings); NewNope builds a logger that discards
// everything, for quiet runs and tests.
package logger
