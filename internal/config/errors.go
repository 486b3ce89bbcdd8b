package config

import (
	"errors"

	"github.com/nao1215/coprimepi/internal/coprime"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and name the constraint
// that failed, so the CLI can print them as a one-line message.
//
// The range errors are shared with the coprime package, so errors.Is
// matches regardless of which layer rejected the value.
var (
	// ErrTooFewPairs is returned when the number of pairs is not greater than MinPairs.
	ErrTooFewPairs = coprime.ErrTooFewPairs

	// ErrMaxNumberTooSmall is returned when the maximum number is not greater than MinMaxNumber.
	ErrMaxNumberTooSmall = coprime.ErrMaxNumberTooSmall

	// ErrInvalidFormat is returned when the report format is not one of text, json or markdown.
	ErrInvalidFormat = errors.New("invalid report format: must be text, json or markdown")
)
