// Command fluxfmt is the CLI driver around the pure core in package
// fluxfmt. The core reads and writes no files (it only checks whether include
// targets exist, for warnings); this is the thin layer that
// reads source, calls fluxfmt.Format, and writes the result back out,
// keeping flag parsing and file I/O separate from the formatting pipeline
// itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fluxfmt/fluxfmt"
	"github.com/fluxfmt/fluxfmt/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		if err := run(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "fluxfmt: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`fluxfmt - a source formatter

Usage:
  fluxfmt [-w] [-config path] file...
  fluxfmt help
  fluxfmt version

Options:
  -w            Write the formatted result back to each file instead of
                printing to stdout
  -config path  Path to a fluxfmt.toml (default: ./fluxfmt.toml if present,
                otherwise the built-in defaults)`)
}

func printVersion() {
	fmt.Println("fluxfmt version 0.1.0")
}

func run(args []string) error {
	fs := flag.NewFlagSet("fluxfmt", flag.ExitOnError)
	write := fs.Bool("w", false, "write result to source file instead of stdout")
	configPath := fs.String("config", "", "path to fluxfmt.toml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		return err
	}

	for _, path := range fs.Args() {
		if err := formatFile(path, opts, *write); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// loadOptions resolves the effective Options: an explicit -config always
// wins; otherwise a fluxfmt.toml in the working directory is used if
// present, and config.Default() otherwise.
func loadOptions(explicit string) (config.Options, error) {
	path := explicit
	if path == "" {
		if _, err := os.Stat("fluxfmt.toml"); err == nil {
			path = "fluxfmt.toml"
		}
	}
	if path == "" {
		return config.Default(), nil
	}
	opts, warnings, err := config.Load(path)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "fluxfmt: %s\n", w)
	}
	return opts, err
}

func formatFile(path string, opts config.Options, write bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := fluxfmt.Format(string(source), opts)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "fluxfmt: %s: %s\n", path, w)
	}

	if !write {
		fmt.Print(result.Text)
		return nil
	}
	if result.Text == string(source) {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(result.Text), info.Mode())
}
