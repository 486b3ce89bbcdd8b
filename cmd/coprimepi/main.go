// Package main provides the entry point for the coprimepi CLI.
//
// coprimepi approximates pi using the fact that two random integers are
// coprime with probability 6/pi^2.
//
// Usage:
//
//	coprimepi [-m MAX_NUMBER] [-d] PAIRS
//
// See --help for all available options.
package main

// main is the entry point for coprimepi.
func main() {
	Execute()
}
