// Command affine-decrypt recovers the key of an affine substitution cipher from known
// symbol pairs and decodes the configured message.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/mahdiidarabi/affine-decrypt/internal/config"
	"github.com/mahdiidarabi/affine-decrypt/internal/logger"
	"github.com/mahdiidarabi/affine-decrypt/internal/report"
	"github.com/mahdiidarabi/affine-decrypt/pkg/affinecipher"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	settings := config.Load()

	fs := flag.NewFlagSet("affine-decrypt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile   string
		alphabetFile = fs.String("alphabet", "", "Optional CSV file (code,symbol) that replaces the config's table")
		logLevel     = fs.String("log-level", settings.LogLevel, "Log level (debug, info, warn, error)")
		logFormat    = fs.String("log-format", settings.LogFormat, "Log format (text or json)")
		noProgress   = fs.Bool("no-progress", settings.NoProgress, "Disable the interactive progress bar")
	)
	fs.StringVar(&configFile, "config", "", "Path to JSON config: table, b, known_pairs, ciphertext")
	fs.StringVar(&configFile, "c", "", "Shorthand for -config")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if configFile == "" {
		fmt.Fprintf(stderr, "Error: -config is required\n")
		fs.Usage()
		return 2
	}

	log, err := logger.New(logger.Options{Level: *logLevel, Format: logger.Format(*logFormat), Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := (&affinecipher.JSONParser{}).ParseConfig(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config %s: %v\n", configFile, err)
		return 1
	}
	log.WithField("file", configFile).Debug("Loaded config")

	if *alphabetFile != "" {
		alphabet, err := (&affinecipher.CSVAlphabetParser{}).ParseAlphabet(*alphabetFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to load alphabet %s: %v\n", *alphabetFile, err)
			return 1
		}
		cfg.Alphabet = alphabet
		log.WithFields(logrus.Fields{"file": *alphabetFile, "symbols": len(alphabet)}).Info("Replaced table from CSV")
	}

	report.Header(stdout, cfg)

	progress := report.NewProgress(stderr, log, !*noProgress && report.IsTerminal(stderr))
	client := affinecipher.NewClient().
		WithLogger(log).
		WithProgress(progress.Update)

	result, err := client.DecryptConfig(ctx, cfg)
	progress.Done()
	if err != nil {
		report.Failure(stdout, err)
		return 1
	}

	report.Success(stdout, result)
	return 0
}
