// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jsonfix repairs malformed JSON from a file or stdin and writes the
// repaired text to a file or stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jsonfix"
)

var cli struct {
	Input  string `help:"Path to the input file. Reads stdin if not set." short:"i" type:"path"`
	Output string `help:"Path to the output file. Writes stdout if not set." short:"o" type:"path"`

	Pretty   bool `help:"Pretty-print the output, one element per line." short:"p"`
	Space    bool `help:"Pad punctuation with spaces, on one line." short:"s"`
	Preserve bool `help:"Keep the original whitespace, repairs only." short:"P"`
	SortKeys bool `help:"Render object keys in ascending order."`
	Indent   int  `help:"Spaces per indentation level with --pretty." default:"4"`
	Tabs     bool `help:"Indent with tabs instead of spaces with --pretty."`
}

// cliDefaults is the zero state of the flags, restored between tests.
var cliDefaults = cli

func main() {
	kong.Parse(&cli,
		kong.Name("jsonfix"),
		kong.Description("Repair malformed JSON."),
		kong.UsageOnError(),
	)
	if err := run(buildConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "jsonfix: %v\n", err)
		os.Exit(1)
	}
}

func buildConfig() jsonfix.Config {
	cfg := jsonfix.Config{
		Preserve:     cli.Preserve,
		SpaceBetween: cli.Space,
		Beautify:     cli.Pretty,
		IndentSize:   cli.Indent,
		SortKeys:     cli.SortKeys,
	}
	if cli.Tabs {
		cfg.IndentStyle = jsonfix.Tabs
	}
	return cfg
}

func run(cfg jsonfix.Config) error {
	input, err := readInput()
	if err != nil {
		return err
	}
	fixed, err := jsonfix.FixWithConfig(input, cfg)
	if err != nil {
		return err
	}
	return writeOutput(fixed + "\n")
}

func readInput() (string, error) {
	if cli.Input != "" {
		bits, err := os.ReadFile(cli.Input)
		if err != nil {
			return "", err
		}
		return string(bits), nil
	}
	bits, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(bits), nil
}

func writeOutput(text string) error {
	if cli.Output != "" {
		return os.WriteFile(cli.Output, []byte(text), 0644)
	}
	_, err := io.WriteString(os.Stdout, text)
	return err
}
