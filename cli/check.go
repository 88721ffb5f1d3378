package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/exp/slices"

	"github.com/rw1nkler/xls/astfmt"
	"github.com/rw1nkler/xls/internal/astio"
	"github.com/rw1nkler/xls/internal/diagnostics"
	"github.com/rw1nkler/xls/telemetry"
)

func readEnvelope(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func writeEnvelope(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

// CheckCmd formats every given envelope and reports files that cannot
// be read, decoded or formatted, and files whose rendering has
// trailing whitespace or a missing/duplicated final newline. Line
// width is not checked. There is no
// parser in this module (see package-level docs on internal/astio), so
// this cannot be gofmt -l's "would AutoFmt change this file's text" —
// it is the subset of that check this module can actually perform
// without one.
type CheckCmd struct {
	Files []string `help:"Module envelope filenames to check." arg:"" optional:""`
	Width int      `help:"Target text width." default:"100"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()
	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}
	root := telemetry.FromContext(runCtx).Start("check")
	defer root.End()

	type violation struct {
		file   string
		reason string
	}
	var violations []violation

	for _, file := range cmd.Files {
		fileTimer := root.Child(file)
		data, err := readEnvelope(file)
		if err != nil {
			fileTimer.End()
			violations = append(violations, violation{file, err.Error()})
			continue
		}

		module, idx, err := astio.Unmarshal(data)
		if err != nil {
			fileTimer.End()
			violations = append(violations, violation{file, err.Error()})
			continue
		}

		out, err := astfmt.AutoFmt(module, idx, cmd.Width)
		fileTimer.End()
		if err != nil {
			if formatErr, ok := err.(*diagnostics.FormatError); ok {
				violations = append(violations, violation{file, formatErr.Error()})
				continue
			}
			return err
		}

		if reason := lintOutput(out); reason != "" {
			violations = append(violations, violation{file, reason})
		}
	}

	slices.SortFunc(violations, func(a, b violation) int { return strings.Compare(a.file, b.file) })

	for _, v := range violations {
		printError(ctx.Stderr, fmt.Sprintf("%s: %s", v.file, v.reason))
	}
	if len(violations) > 0 {
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d file(s) OK", len(cmd.Files)))
	return nil
}

// lintOutput checks the output guarantees (no trailing whitespace,
// exactly one final newline) that AutoFmt's own output must satisfy
// regardless of input.
func lintOutput(out string) string {
	if out == "" {
		return ""
	}
	if !strings.HasSuffix(out, "\n") {
		return "missing trailing newline"
	}
	if strings.HasSuffix(out, "\n\n") {
		return "more than one trailing newline"
	}
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if strings.TrimRight(line, " \t") != line {
			return fmt.Sprintf("trailing whitespace on line %d", i+1)
		}
	}
	return ""
}
