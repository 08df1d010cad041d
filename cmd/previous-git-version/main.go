// Command previous-git-version prints the existing git tag an upgrade to the
// given version should start from.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pellnetwork/versiontags/internal/logging"
	"github.com/pellnetwork/versiontags/internal/output"
	"github.com/pellnetwork/versiontags/internal/tags"
	"github.com/pellnetwork/versiontags/pkg/config"
	"github.com/pellnetwork/versiontags/pkg/version"
)

const toolName = "previous-git-version"

var (
	errUsage         = errors.New("Usage: get_previous_git_version.py <version>")
	errInvalidFormat = errors.New("Invalid version format. Use vX, vX.Y, or vX.Y.Z.")
)

// cliError carries the message printed for a resolution failure while
// keeping the library error reachable through errors.Is and errors.As.
type cliError struct {
	msg string
	err error
}

func (e *cliError) Error() string { return e.msg }

func (e *cliError) Unwrap() error { return e.err }

// resolveError maps library errors to the messages the command prints.
func resolveError(err error) error {
	var (
		serr *version.SourceError
		nf   *version.SeriesNotFoundError
		derr *version.DerivationError
		msg  string
	)
	switch {
	case errors.As(err, &serr):
		msg = fmt.Sprintf("Failed to list git tags: %v", serr.Err)
	case errors.Is(err, version.ErrNoValidTags):
		msg = "No valid version tags found (vX, vX.Y, or vX.Y.Z)."
	case errors.As(err, &nf):
		msg = fmt.Sprintf("No tag found for %s", nf.Series)
	case errors.As(err, &derr) && derr.Kind == version.NegativeMinor:
		msg = fmt.Sprintf("Invalid minor version derived from parameter: %s", derr.Input)
	case errors.As(err, &derr) && derr.Kind == version.MajorBelowOne:
		msg = "Logic error: target major is below 1."
	default:
		return err
	}
	return &cliError{msg: msg, err: err}
}

func mainWithFlags(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	printUsage := func() {
		flags.SetOutput(stderr)
		fmt.Fprintf(stderr, "Usage: %s [options] <version>\n\n", toolName)
		fmt.Fprintf(stderr, "Prints the existing tag an upgrade to <version> (vX, vX.Y or vX.Y.Z) starts from.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}

	configFile := flags.String("config", "", "Path to config file (HCL, JSON or YAML)")
	format := flags.String("output", "", "Output format: text, json or yaml")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL, then warn)")
	source := flags.String("source", "", "Tag source: git, gogit or file (default git)")
	dir := flags.String("dir", "", "Repository directory to list tags from (default .)")
	tagsFile := flags.String("tags-file", "", "Newline-delimited tags file, or - for stdin; implies -source file")
	gitBinary := flags.String("git", "", "git executable used by the git source (default git)")

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
	if *tagsFile != "" && *source == "" {
		*source = config.SourceFile
	}
	cfg.Merge(&config.Config{
		Tags: &config.TagsConfig{
			Source:    *source,
			Dir:       *dir,
			File:      *tagsFile,
			GitBinary: *gitBinary,
		},
		Output:   *format,
		LogLevel: *logLevel,
	})
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

	lister, err := tags.New(cfg.Tags)
	if err != nil {
		return err
	}

	res, err := version.ResolvePrevious(ctx, v, lister)
	if err != nil {
		return resolveError(err)
	}
	slog.Debug("resolved previous tag", "input", res.Input, "rule", res.Rule, "result", res.Result)

	return output.Write(stdout, outFormat, res)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := mainWithFlags(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
