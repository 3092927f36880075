// SPDX-License-Identifier: MIT

// Command genpow10 writes the Go source of the 128-bit power-of-ten table
// used by package pow10.
//
// Usage:
//
//	genpow10 -min -342 -max 308 -pkg pow10 -out table_gen.go
//
// With -out empty or "-" the source goes to standard output. Every entry is
// self-checked against the log2(10) exponent estimate; a mismatch aborts
// without writing anything.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/elfloat/pow10"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "genpow10:", err)
		}
		os.Exit(1)
	}
}

// run parses args, generates the table and writes it to -out or stdout.
// Logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("genpow10", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		minExp10 = fs.Int("min", pow10.MinExp10, "smallest decimal exponent")
		maxExp10 = fs.Int("max", pow10.MaxExp10, "largest decimal exponent")
		pkg      = fs.String("pkg", "pow10", "package clause of the generated file")
		out      = fs.String("out", "-", `output file ("-" for stdout)`)
		verbose  = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	start := time.Now()
	log.Debug("generating", "min", *minExp10, "max", *maxExp10)
	entries, err := pow10.Generate(ctx, *minExp10, *maxExp10)
	if err != nil {
		log.Error("generation failed", "min", *minExp10, "max", *maxExp10, "err", err)
		return err
	}

	var buf bytes.Buffer
	if err = pow10.WriteSource(&buf, *pkg, *minExp10, entries); err != nil {
		return fmt.Errorf("write source: %w", err)
	}

	if *out == "" || *out == "-" {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(*out, buf.Bytes(), 0o644)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	log.Info("table written", "entries", len(entries), "out", *out, "elapsed", time.Since(start))

	return nil
}
