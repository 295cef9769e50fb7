// Package dvc drives the DVC command-line tool as a subprocess.
// It builds command lines from operation names and file arguments, runs them
// in the vault root with a bounded number of concurrent subprocesses, parses
// the remote list output, and exposes one dispatcher method per operation.
package dvc
