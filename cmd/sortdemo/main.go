package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dusk-indust/sortdemo/internal/config"
	"github.com/dusk-indust/sortdemo/internal/export"
	"github.com/dusk-indust/sortdemo/internal/orchestrator"
	"github.com/dusk-indust/sortdemo/internal/validate"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Format    string
	LogLevel  string
	LogFormat string
	Seed      uint64
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

// exitError carries a process exit code. Message is printed only when
// non-empty; diagnostics are usually written before it is returned.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		code := 1
		var exit *exitError
		if errors.As(err, &exit) {
			code = exit.Code
		}
		if err.Error() != "" {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}

const usage = `sortdemo - sort integers or characters with a chosen algorithm.

Usage:
  sortdemo [options] key=value ...

Arguments:
  a=S|Q|B      algorithm: selection, quick or bubble (default S)
  o=AZ|ZA      output order (default AZ)
  in=M|r       input mode: manual values or random generation
  t=N|C        declared element kind: numbers or characters
  v=x,y,...    comma-separated values, all integers or all single characters
  s=100..1000  generation speed

Options:
`

func run(args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("sortdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&flags.ConfigDir, "config", ".", "directory containing sortdemo.yml")
	fs.StringVar(&flags.Format, "format", "text", "output format: text or json")
	fs.StringVar(&flags.LogLevel, "log-level", "warn", "logging level: debug, info, warn or error")
	fs.StringVar(&flags.LogFormat, "log-format", "text", "log output format: text or json")
	fs.Uint64Var(&flags.Seed, "seed", 0, "seed for random input (0 picks a time-based seed)")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{Code: 2}
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	project, err := config.Load(flags.ConfigDir)
	if err != nil {
		return &exitError{Code: 2, Message: err.Error()}
	}
	applyProjectConfig(fs, &flags, project)

	logger := newLogger(strings.ToLower(flags.LogLevel), strings.ToLower(flags.LogFormat), stderr)
	if project.Path != "" {
		logger.Debug("loaded project config", "path", project.Path)
	}

	format, err := export.ParseFormat(strings.ToLower(flags.Format))
	if err != nil {
		return &exitError{Code: 2, Message: err.Error()}
	}

	defaults, err := project.Defaults()
	if err != nil {
		return &exitError{Code: 2, Message: err.Error()}
	}

	cfg, err := validate.ValidateWith(fs.Args(), defaults)
	if err != nil {
		export.WriteDiagnostics(stderr, err)
		return &exitError{Code: 1}
	}
	logger.Debug("arguments validated",
		"algorithm", cfg.Algorithm.String(),
		"order", string(cfg.Order),
		"input", cfg.Input.String(),
	)

	if format == export.FormatText {
		if err := export.WriteArguments(stdout, cfg); err != nil {
			return err
		}
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if flags.Seed != 0 {
		opts = append(opts, orchestrator.WithSeed(flags.Seed))
	}

	values, err := orchestrator.New(opts...).Run(cfg)
	if err != nil {
		export.WriteDiagnostics(stderr, err)
		return &exitError{Code: 1}
	}

	if format == export.FormatJSON {
		return export.WriteJSON(stdout, cfg, values)
	}
	return export.WriteValues(stdout, values)
}

// applyProjectConfig fills flags that were not set on the command line from
// the project config file.
func applyProjectConfig(fs *flag.FlagSet, flags *cliFlags, project *config.ProjectConfig) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["format"] && project.Format != "" {
		flags.Format = project.Format
	}
	if !set["log-level"] && project.LogLevel != "" {
		flags.LogLevel = project.LogLevel
	}
	if !set["log-format"] && project.LogFormat != "" {
		flags.LogFormat = project.LogFormat
	}
	if !set["seed"] && project.Seed != 0 {
		flags.Seed = project.Seed
	}
}
