package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/viant/licensor"
	"github.com/viant/licensor/classification"
	"github.com/viant/licensor/model"
	"github.com/viant/licensor/policy"
	"github.com/viant/licensor/report"
	"github.com/viant/licensor/spdx"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}
	switch args[0] {
	case "evaluate":
		return cmdEvaluate(args[1:], out, errOut)
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "spdx":
		return cmdSPDX(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "licensor: license classification policy evaluator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  licensor evaluate --packages <url> [--classifications <url>] [--config <url>] [--report <url>] [--workers N] [--mode enforce|advisory|off] [--json] [--verbose] [--no-color]")
	fmt.Fprintln(w, "  licensor check [--allow <category>] [--review <category>] <classifications-url>")
	fmt.Fprintln(w, "  licensor spdx [--mapping key=value ...] <expression> [expression ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - URLs may use any afs scheme: file path, mem://, s3://, gs://")
	fmt.Fprintln(w, "  - evaluate exits with 1 when error severity violations are found")
	fmt.Fprintln(w, "  - config values support ${env.KEY} expressions")
}

type mappingFlag map[string]string

func (m mappingFlag) String() string {
	var pairs []string
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (m mappingFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	m[key] = val
	return nil
}

func cmdEvaluate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var configURL, classificationsURL, packagesURL, reportURL, mode string
	var workers int
	var asJSON, verbose, noColor bool
	fs.StringVar(&configURL, "config", "", "Config URL")
	fs.StringVar(&classificationsURL, "classifications", "", "License classifications URL")
	fs.StringVar(&packagesURL, "packages", "", "Packages URL")
	fs.StringVar(&reportURL, "report", "", "Report storage base URL")
	fs.StringVar(&mode, "mode", "", "Policy mode: enforce, advisory or off")
	fs.IntVar(&workers, "workers", 0, "Number of packages evaluated concurrently")
	fs.BoolVar(&asJSON, "json", false, "Print report as JSON")
	fs.BoolVar(&verbose, "verbose", false, "Verbose logging")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if packagesURL == "" {
		fmt.Fprintln(errOut, "usage: licensor evaluate --packages <url> [--classifications <url>] [--config <url>]")
		return 2
	}
	if noColor {
		color.NoColor = true
	}
	ctx := context.Background()

	config := licensor.DefaultConfig()
	if configURL != "" {
		loaded, err := licensor.LoadConfig(ctx, nil, configURL)
		if err != nil {
			fmt.Fprintf(errOut, "config: %v\n", err)
			return 2
		}
		config = loaded
	}
	if classificationsURL != "" {
		config.Classifications = classificationsURL
	}
	if reportURL != "" {
		config.ReportURL = reportURL
	}
	if workers > 0 {
		config.Workers = workers
	}
	if mode != "" {
		if config.Policy == nil {
			config.Policy = &policy.Config{}
		}
		config.Policy.Mode = mode
	}
	if config.Classifications == "" {
		fmt.Fprintln(errOut, "evaluate: --classifications or config classifications is required")
		return 2
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 2
	}

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintf(errOut, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	srv, err := licensor.New(licensor.WithConfig(config), licensor.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	packages, err := srv.LoadPackages(ctx, packagesURL)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	aReport, err := srv.Evaluate(ctx, packages)
	if err != nil {
		fmt.Fprintf(errOut, "evaluate: %v\n", err)
		return 1
	}
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err = encoder.Encode(aReport); err != nil {
			fmt.Fprintf(errOut, "encode report: %v\n", err)
			return 1
		}
	} else {
		printReport(out, aReport)
	}
	if aReport.HasErrors() {
		return 1
	}
	return 0
}

func printReport(w io.Writer, aReport *report.Report) {
	for _, violation := range aReport.Violations {
		severityColor(violation.Severity).Fprintf(w, "%-7s", violation.Severity)
		fmt.Fprintf(w, " %s %s\n", violation.Rule, violation.Message)
	}
	summary := aReport.Summary
	fmt.Fprintf(w, "%d packages (%d excluded): %d errors, %d warnings, %d hints\n",
		summary.Packages, summary.Excluded, summary.Errors, summary.Warnings, summary.Hints)
	if aReport.HasErrors() {
		color.New(color.FgRed, color.Bold).Fprintln(w, "FAILED")
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintln(w, "PASSED")
}

func severityColor(severity model.Severity) *color.Color {
	switch severity {
	case model.SeverityError:
		return color.New(color.FgRed)
	case model.SeverityWarning:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgCyan)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var allow, review string
	fs.StringVar(&allow, "allow", classification.CategoryAllow, "Allowed licenses category")
	fs.StringVar(&review, "review", classification.CategoryReview, "Review licenses category")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: licensor check [--allow <category>] [--review <category>] <classifications-url>")
		return 2
	}
	config := licensor.DefaultConfig()
	config.Categories = licensor.Categories{Allow: allow, Review: review}
	srv, err := licensor.New(licensor.WithConfig(config))
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 2
	}
	sets, err := srv.LoadClassifications(context.Background(), fs.Arg(0))
	if err != nil {
		var duplicateErr *classification.DuplicateError
		if errors.As(err, &duplicateErr) {
			fmt.Fprintln(errOut, duplicateErr.Error())
			return 1
		}
		fmt.Fprintf(errOut, "check: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "allowed: %d, review: %d, handled: %d\n", sets.Allowed().Len(), sets.Review().Len(), sets.Handled().Len())
	return 0
}

func cmdSPDX(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("spdx", flag.ContinueOnError)
	fs.SetOutput(errOut)
	mapping := mappingFlag{}
	fs.Var(mapping, "mapping", "Declared license mapping key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: licensor spdx [--mapping key=value ...] <expression> [expression ...]")
		return 2
	}
	processed := spdx.Process(fs.Args(), mapping)
	if processed.Expression != "" {
		fmt.Fprintln(out, processed.Expression)
	}
	for _, unmapped := range processed.Unmapped {
		fmt.Fprintf(errOut, "unmapped: %s\n", unmapped)
	}
	if len(processed.Unmapped) > 0 {
		return 1
	}
	return 0
}
