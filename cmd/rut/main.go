// Package main provides the rut command-line tool for validating, formatting
// and generating Chilean RUT/RUN identifiers.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"rutcheck/internal/platform/logger"
	"rutcheck/internal/validation"
	"rutcheck/pkg/requestcontext"
	"rutcheck/pkg/rut"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// errInvalid signals that at least one input was rejected. The offending
// inputs have already been reported, so main exits without another message.
var errInvalid = errors.New("one or more identifiers are invalid")

// cli defines the command-line interface using Kong
type cli struct {
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level for diagnostics on stderr"`

	Validate   ValidateCmd   `cmd:"" help:"Check identifiers; exits 1 if any is invalid"`
	Format     FormatCmd     `cmd:"" help:"Print identifiers in canonical form"`
	Clean      CleanCmd      `cmd:"" help:"Strip separators and whitespace"`
	Parts      PartsCmd      `cmd:"" help:"Show the body and check character of an identifier"`
	CheckDigit CheckDigitCmd `cmd:"" name:"check-digit" help:"Compute the check character for a body"`
	Batch      BatchCmd      `cmd:"" help:"Validate one identifier per line and print JSON results"`
	Generate   GenerateCmd   `cmd:"" help:"Generate random valid identifiers"`
	Classify   ClassifyCmd   `cmd:"" help:"Guess whether identifiers belong to organizations"`
	Demo       DemoCmd       `cmd:"" help:"Walk through every operation with sample data"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// app carries what every command needs. It is bound into Run methods.
type app struct {
	ctx context.Context
	svc *validation.Service
	in  io.Reader
	out io.Writer
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("rut"),
		kong.Description("Chilean RUT/RUN validation toolkit"),
		kong.UsageOnError(),
	)

	a, err := newApp(c.LogLevel, os.Stdin, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)

	err = kctx.Run(a)
	if errors.Is(err, errInvalid) {
		os.Exit(1)
	}
	kctx.FatalIfErrorf(err)
}

func newApp(logLevel string, in io.Reader, out, errOut io.Writer) (*app, error) {
	log := logger.NewWithWriter(errOut, logLevel, "text")
	svc, err := validation.New(rut.DefaultPolicy(), log, nil)
	if err != nil {
		return nil, fmt.Errorf("build validation service: %w", err)
	}
	return &app{
		ctx: requestcontext.WithRequestID(context.Background(), "cli"),
		svc: svc,
		in:  in,
		out: out,
	}, nil
}
