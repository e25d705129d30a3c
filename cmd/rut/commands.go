package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	textutil "rutcheck/pkg/platform/strings"
	"rutcheck/pkg/rut"
)

// ValidateCmd reports whether each identifier is valid.
type ValidateCmd struct {
	Range bool     `name:"range" short:"r" help:"Also require the body to be in the plausible range"`
	RUTs  []string `arg:"" name:"rut" required:"" help:"Identifiers to check"`
}

func (c *ValidateCmd) Run(a *app) error {
	failed := false
	for _, raw := range c.RUTs {
		verdict := "valid"
		if !a.svc.Validate(a.ctx, raw, c.Range) {
			verdict = "invalid"
			failed = true
		}
		fmt.Fprintf(a.out, "%s: %s\n", raw, verdict)
	}
	if failed {
		return errInvalid
	}
	return nil
}

// FormatCmd prints identifiers in canonical form.
type FormatCmd struct {
	Compact bool     `name:"compact" help:"Omit thousands separators"`
	RUTs    []string `arg:"" name:"rut" required:"" help:"Identifiers to format"`
}

func (c *FormatCmd) Run(a *app) error {
	failed := false
	for _, raw := range c.RUTs {
		formatted, err := a.svc.Format(a.ctx, raw, !c.Compact)
		if err != nil {
			fmt.Fprintf(a.out, "%s: error: %s\n", raw, reason(err))
			failed = true
			continue
		}
		fmt.Fprintln(a.out, formatted)
	}
	if failed {
		return errInvalid
	}
	return nil
}

// CleanCmd prints the normalized form of an identifier.
type CleanCmd struct {
	RUT string `arg:"" name:"rut" help:"Identifier to clean"`
}

func (c *CleanCmd) Run(a *app) error {
	cleaned, err := a.svc.Clean(a.ctx, c.RUT)
	if err != nil {
		return userError(err)
	}
	fmt.Fprintln(a.out, cleaned)
	return nil
}

// PartsCmd shows the components of an identifier.
type PartsCmd struct {
	RUT string `arg:"" name:"rut" help:"Identifier to split"`
}

func (c *PartsCmd) Run(a *app) error {
	id, err := a.svc.Parse(a.ctx, c.RUT)
	if err != nil {
		return userError(err)
	}
	fmt.Fprintf(a.out, "body:     %s\n", id.Digits)
	fmt.Fprintf(a.out, "check:    %s\n", id.Check)
	fmt.Fprintf(a.out, "expected: %s\n", id.Expected())
	fmt.Fprintf(a.out, "valid:    %t\n", id.Valid())
	return nil
}

// CheckDigitCmd computes the check character for a body.
type CheckDigitCmd struct {
	Body int `arg:"" name:"body" help:"Numeric body without check character"`
}

func (c *CheckDigitCmd) Run(a *app) error {
	check, err := a.svc.CheckCharacter(a.ctx, c.Body)
	if err != nil {
		return userError(err)
	}
	fmt.Fprintln(a.out, check)
	return nil
}

// BatchCmd validates identifiers read one per line.
type BatchCmd struct {
	Range bool   `name:"range" short:"r" help:"Also require bodies to be in the plausible range"`
	File  string `arg:"" name:"file" optional:"" default:"-" help:"Input file, or - for stdin"`
}

func (c *BatchCmd) Run(a *app) error {
	in := a.in
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		in = f
	}

	inputs, err := textutil.ReadLines(in)
	if err != nil {
		return fmt.Errorf("read batch input: %w", err)
	}
	results, err := a.svc.ValidateBatch(a.ctx, inputs, c.Range)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// GenerateCmd prints random valid identifiers.
type GenerateCmd struct {
	Min   int `name:"min" default:"10000000" help:"Smallest body to draw"`
	Max   int `name:"max" default:"25000000" help:"Largest body to draw"`
	Count int `name:"count" short:"n" default:"1" help:"How many identifiers to print"`
}

func (c *GenerateCmd) Run(a *app) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	for range c.Count {
		out, err := a.svc.Generate(a.ctx, c.Min, c.Max)
		if err != nil {
			return userError(err)
		}
		fmt.Fprintln(a.out, out)
	}
	return nil
}

// ClassifyCmd applies the organizational heuristic.
type ClassifyCmd struct {
	RUTs []string `arg:"" name:"rut" required:"" help:"Identifiers to classify"`
}

func (c *ClassifyCmd) Run(a *app) error {
	for _, raw := range c.RUTs {
		fmt.Fprintf(a.out, "%s: %s\n", raw, classify(a, raw))
	}
	return nil
}

func classify(a *app, raw string) string {
	res := a.svc.Classify(a.ctx, raw)
	switch {
	case !res.Parsed:
		return "unparseable"
	case res.Organizational:
		return "organization"
	default:
		return "person"
	}
}

// DemoCmd prints a walkthrough of every operation.
type DemoCmd struct{}

var demoInputs = []string{
	"12.345.678-5",
	"12345678-5",
	"123456785",
	"12.345.678-9",
	"7.654.321-6",
	"76.086.428-5",
	"1234567",
	"",
	"abc",
}

func (c *DemoCmd) Run(a *app) error {
	section(a, "Validation")
	for _, raw := range demoInputs {
		fmt.Fprintf(a.out, "  %-16q valid=%t\n", raw, a.svc.Validate(a.ctx, raw, false))
	}

	section(a, "Formatting")
	for _, raw := range []string{"123456785", "76543210-3", "7654321-6"} {
		dotted, err := a.svc.Format(a.ctx, raw, true)
		if err != nil {
			return err
		}
		compact, err := a.svc.Format(a.ctx, raw, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  %-12s -> %-14s %s\n", raw, dotted, compact)
	}

	section(a, "Components")
	id, err := a.svc.Parse(a.ctx, "12.345.678-5")
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "  body=%s check=%s normalized=%s\n", id.Digits, id.Check, id.Normalized)

	section(a, "Check characters")
	for _, body := range []int{12345678, 7654321, 10000000} {
		check, err := a.svc.CheckCharacter(a.ctx, body)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  %d -> %s\n", body, check)
	}

	section(a, "Batch")
	results, err := a.svc.ValidateBatch(a.ctx, demoInputs[:5], false)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(a.out, "  %-14s ok   %s\n", r.Input, r.Formatted)
			continue
		}
		fmt.Fprintf(a.out, "  %-14s fail %s\n", r.Input, r.Error)
	}

	section(a, "Random")
	for range 3 {
		out, err := a.svc.Generate(a.ctx, rut.DefaultRandomMin, rut.DefaultRandomMax)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  %s\n", out)
	}

	section(a, "Classification")
	for _, raw := range []string{"12.345.678-5", "76.086.428-5", "abc"} {
		fmt.Fprintf(a.out, "  %-14s %s\n", raw, classify(a, raw))
	}
	return nil
}

func section(a *app, title string) {
	fmt.Fprintf(a.out, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// userError unwraps service errors down to the identifier failure, which
// already names the reason and the input.
func userError(err error) error {
	var fe *rut.FormatError
	if errors.As(err, &fe) {
		return fe
	}
	return err
}

// reason is the bare failure message, for lines already prefixed with the input.
func reason(err error) string {
	var fe *rut.FormatError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

// VersionCmd prints version information
type VersionCmd struct{}

func (v *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "rut %s\n", version)
	return nil
}
