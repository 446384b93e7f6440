// Package config holds the command line configuration of the converter.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"csvtojson/pkg/streams"
	"csvtojson/pkg/table"
)

// ErrInvalidArgument marks every problem with the command line itself.
var ErrInvalidArgument = errors.New("invalid argument")

// Config is everything the command line can set.
type Config struct {
	// Filename is the CSV input path (first positional argument)
	Filename string
	// Lines is the second positional argument. It is accepted for
	// compatibility and does not change the output.
	Lines int

	Output   string
	Encoding string
	Types    string
	Numbers  string
	MaxRows  int
	Verify   bool

	LogPath   string
	LogFormat string
	Verbose   bool
}

// Default returns a Config with every flag at its default.
func Default() *Config {
	return &Config{
		Encoding:  streams.DefaultEncoding,
		Types:     table.InferTypes.String(),
		Numbers:   table.Decimals.String(),
		LogFormat: "text",
	}
}

// BindFlags registers the flags on fs, writing into c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output path. Default is the input path with a .json extension")
	fs.StringVarP(&c.Encoding, "encoding", "e", c.Encoding, "character encoding of the input (utf-8, windows-1252, latin1, ...)")
	fs.StringVar(&c.Types, "types", c.Types, "cell typing: infer (int, float, bool, string per column) or string")
	fs.StringVar(&c.Numbers, "numbers", c.Numbers, "float columns as decimal (source digits kept) or float (shortest float64 form)")
	fs.IntVar(&c.MaxRows, "max-rows", c.MaxRows, "stop after this many data rows; 0 reads all rows")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "re-read the written JSON and check it against the input")
	fs.StringVarP(&c.LogPath, "log", "l", c.LogPath, "path to log file. Default is stderr")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable verbose (debug) logging")
}

// SetArgs stores the positional arguments: filename and lines.
func (c *Config) SetArgs(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: want 2 arguments (filename, lines), got %d", ErrInvalidArgument, len(args))
	}
	if strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%w: filename is empty", ErrInvalidArgument)
	}
	lines, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return fmt.Errorf("%w: lines %q is not an integer", ErrInvalidArgument, args[1])
	}
	c.Filename = args[0]
	c.Lines = lines
	return nil
}

// Validate checks every flag value without touching the filesystem.
func (c *Config) Validate() error {
	if _, err := table.ParseTypeMode(c.Types); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if _, err := table.ParseNumberMode(c.Numbers); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if _, err := streams.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("%w: max-rows %d is negative", ErrInvalidArgument, c.MaxRows)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log-format %q is not text or json", ErrInvalidArgument, c.LogFormat)
	}
	return nil
}

// TypeMode returns the parsed --types value. Call Validate first.
func (c *Config) TypeMode() table.TypeMode {
	m, _ := table.ParseTypeMode(c.Types)
	return m
}

// NumberMode returns the parsed --numbers value. Call Validate first.
func (c *Config) NumberMode() table.NumberMode {
	m, _ := table.ParseNumberMode(c.Numbers)
	return m
}
