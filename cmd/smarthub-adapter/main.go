package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/peterbourgon/ff/v3"
	"github.com/wheelibin/smarthub-adapter/internal/adapter"
	"github.com/wheelibin/smarthub-adapter/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const usage = "Arguments must be <method> <inputfile> <outputfile>"

type options struct {
	logFile  string
	logLevel string
	settings string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {

	fs := flag.NewFlagSet("smarthub-adapter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.logFile, "log-file", "logs/adapter.log", "location of the adapter log file, empty to log to stderr")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&opts.settings, "settings", "", "location of the adapter settings file")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("SMARTHUB")); err != nil {
		log.NewWithOptions(stderr, log.Options{}).Error("Failed to parse environment/command line arguments", "err", err)
		return 1
	}

	logger := newLogger(opts, stderr).With("run", uuid.NewString())

	if fs.NArg() != 3 {
		logger.Error(usage, "args", fs.Args())
		return 1
	}
	method, inputPath, outputPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	logger.Info("smarthub-adapter starting", "method", method)

	settings, err := config.ReadSettings(opts.settings)
	if err != nil {
		logger.Error("Unable to read settings", "err", err)
		return 1
	}

	if err := adapter.Run(ctx, logger, *settings, method, inputPath, outputPath); err != nil {
		logger.Error("Adapter method failed", "method", method, "err", err)
		return 1
	}

	return 0
}

func newLogger(opts options, stderr io.Writer) *log.Logger {
	var w io.Writer = stderr
	if opts.logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.logFile,
			MaxBackups: 5,
			MaxAge:     3,
		}
		// one file per invocation
		if err := lj.Rotate(); err != nil {
			log.NewWithOptions(stderr, log.Options{}).Error("Unable to rotate log file, logging to stderr", "file", opts.logFile, "err", err)
		} else {
			w = lj
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(opts.logLevel),
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
}

func parseLevel(level string) log.Level {
	if strings.EqualFold(level, "warning") {
		return log.WarnLevel
	}
	return log.ParseLevel(level)
}
