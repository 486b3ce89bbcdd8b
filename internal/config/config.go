package config

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/coprimepi/internal/coprime"
)

const (
	// AppName is the application name used for configuration paths.
	AppName = "coprimepi"

	// MinPairs is the exclusive lower bound for the number of pairs.
	MinPairs = coprime.MinPairs

	// MinMaxNumber is the exclusive lower bound for the sampling upper bound.
	MinMaxNumber = coprime.MinMaxNumber

	// DefaultMaxNumber is the inclusive upper bound used when none is given.
	// It is the largest value of int64, the integer width used for sampling.
	DefaultMaxNumber int64 = math.MaxInt64

	// DefaultFormat is the report format used when none is given.
	DefaultFormat = FormatText
)

// Format is the output format of the final report.
type Format string

// Supported report formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Config holds the parameters of a single estimation run.
type Config struct {
	// Pairs is the number of random pairs to sample.
	Pairs int64

	// MaxNumber is the inclusive upper bound of sampled integers.
	MaxNumber int64

	// Debug enables one trace line per sampled pair.
	Debug bool

	// Format selects the report writer.
	Format Format

	// Verbose enables debug-level logging on stderr.
	Verbose bool

	// ConfigFilePath is the path to the YAML configuration file, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MaxNumber: DefaultMaxNumber,
		Format:    DefaultFormat,
	}
}

// XDGConfigDir returns the XDG config directory for coprimepi.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks that the configuration is valid.
// Pairs is checked before MaxNumber so the first failing constraint is reported.
func (c *Config) Validate() error {
	if c.Pairs <= MinPairs {
		return ErrTooFewPairs
	}

	if c.MaxNumber <= MinMaxNumber {
		return ErrMaxNumberTooSmall
	}

	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}

	return nil
}

// ApplyFile copies values from the configuration file into c.
// Fields present in overridden are left untouched, which lets explicit
// command line flags win over the file.
func (c *Config) ApplyFile(f *File, overridden map[string]bool) error {
	if f == nil {
		return nil
	}

	if f.MaxNumber != 0 && !overridden["max-number"] {
		c.MaxNumber = f.MaxNumber
	}
	if f.Debug && !overridden["debug"] {
		c.Debug = true
	}
	if f.Format != "" && !overridden["format"] {
		format, err := ParseFormat(f.Format)
		if err != nil {
			return err
		}
		c.Format = format
	}

	return nil
}
