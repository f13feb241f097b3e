// Command cmdat queries a game database directory.
//
//	cmdat [-data DIR] [-v] [-batch FILE] <command> [args]
//
// Run "cmdat help" for the list of commands.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/meigma/cmdat"
)

type config struct {
	dataDir     string
	verbose     bool
	batch       string
	strictSpans bool
	noNames     bool
	workers     int
	cpuProfile  string
	memProfile  string
}

func main() {
	cfg := parseFlags()
	os.Exit(run(cfg, flag.Args(), os.Stdout, os.Stderr))
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.dataDir, "data", filepath.Join("Input", "Data"), "game data directory")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.StringVar(&cfg.batch, "batch", "", "read commands from file, one per line (\"-\" for stdin)")
	flag.BoolVar(&cfg.strictSpans, "strict", false, "fail when staff.dat blocks do not line up")
	flag.BoolVar(&cfg.noNames, "no-names", false, "skip loading name tables")
	flag.IntVar(&cfg.workers, "workers", 0, "decode workers per block: <0 serial, 0 auto, >0 fixed")
	flag.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write CPU profile of the load to file")
	flag.StringVar(&cfg.memProfile, "memprofile", "", "write heap profile after the load to file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: cmdat [flags] <command> [args]\n\nflags:\n")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		printCommands(flag.CommandLine.Output())
	}
	flag.Parse()
	return cfg
}

func run(cfg config, args []string, stdout, stderr io.Writer) int {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.batch == "" && len(args) == 0 {
		args = []string{defaultCommand}
	}
	if len(args) > 0 && args[0] == "help" {
		printCommands(stdout)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("open database", slog.String("dir", cfg.dataDir), slog.Any("error", err))
		return 1
	}

	if cfg.batch != "" {
		return runBatch(ctx, db, cfg.batch, stdout, logger)
	}
	if err := dispatch(ctx, db, args, stdout); err != nil {
		logger.Error("command failed", slog.String("command", args[0]), slog.Any("error", err))
		return 1
	}
	return 0
}

func openDatabase(ctx context.Context, cfg config, logger *slog.Logger) (*cmdat.Database, error) {
	if cfg.cpuProfile != "" {
		f, err := os.Create(cfg.cpuProfile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return nil, err
		}
		defer pprof.StopCPUProfile()
	}

	opts := []cmdat.Option{
		cmdat.WithLogger(logger),
		cmdat.WithStrictSpans(cfg.strictSpans),
		cmdat.WithDecodeWorkers(cfg.workers),
	}
	if cfg.noNames {
		opts = append(opts, cmdat.WithoutNames())
	}
	db, err := cmdat.Open(ctx, cfg.dataDir, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.memProfile != "" {
		f, err := os.Create(cfg.memProfile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// runBatch runs one command per line of path. Blank lines and lines
// starting with # are skipped. Every line runs even after a failure.
func runBatch(ctx context.Context, db *cmdat.Database, path string, stdout io.Writer, logger *slog.Logger) int {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("open batch file", slog.Any("error", err))
			return 1
		}
		defer f.Close()
		r = f
	}

	status := 0
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			logger.Error("batch interrupted", slog.Int("line", lineNo))
			return 1
		}
		args, err := shellquote.Split(line)
		if err != nil {
			logger.Error("parse batch line", slog.Int("line", lineNo), slog.Any("error", err))
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "> %s\n", line)
		if err := dispatch(ctx, db, args, stdout); err != nil {
			logger.Error("command failed", slog.Int("line", lineNo), slog.String("command", args[0]), slog.Any("error", err))
			status = 1
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("read batch file", slog.Any("error", err))
		return 1
	}
	return status
}
