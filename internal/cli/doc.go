// Package cli holds the flag parsing, logger setup and exit-code mapping
// shared by the commands under cmd/.
package cli
