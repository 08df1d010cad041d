// Command upgrade-version prints the version label an upgrade to the given
// version starts from.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pellnetwork/versiontags/internal/logging"
	"github.com/pellnetwork/versiontags/internal/output"
	"github.com/pellnetwork/versiontags/pkg/config"
	"github.com/pellnetwork/versiontags/pkg/version"
)

const toolName = "upgrade-version"

var (
	errUsage         = errors.New("Usage: script.py <version> (e.g., script.py v1.2.3)")
	errInvalidFormat = errors.New("Invalid version format. Please use formats like v1, v1.2, or v1.2.3")
)

func mainWithFlags(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	printUsage := func() {
		flags.SetOutput(stderr)
		fmt.Fprintf(stderr, "Usage: %s [options] <version>\n\n", toolName)
		fmt.Fprintf(stderr, "Prints the version an upgrade to <version> (vX, vX.Y or vX.Y.Z) starts from.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}

	configFile := flags.String("config", "", "Path to config file (HCL, JSON or YAML)")
	format := flags.String("output", "", "Output format: text, json or yaml")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL, then warn)")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage()
			return nil
		}
		return errUsage
	}
	if flags.NArg() != 1 {
		return errUsage
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cfg.Merge(&config.Config{Output: *format, LogLevel: *logLevel})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Setup(stderr, toolName, cfg.LogLevel); err != nil {
		return err
	}
	outFormat, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	input := flags.Arg(0)
	v, err := version.Parse(input)
	if err != nil {
		slog.Debug("rejected input", "input", input, "error", err)
		return errInvalidFormat
	}

	res := version.ResolveUpgrade(v)
	slog.Debug("resolved upgrade version", "input", res.Input, "rule", res.Rule, "result", res.Result)

	return output.Write(stdout, outFormat, res)
}

func main() {
	if err := mainWithFlags(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
