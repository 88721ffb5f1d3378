package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rw1nkler/xls/astfmt"
	"github.com/rw1nkler/xls/internal/astio"
	"github.com/rw1nkler/xls/internal/diagnostics"
	"github.com/rw1nkler/xls/telemetry"
)

// FormatCmd reads a pre-parsed module envelope (see internal/astio) and
// writes its canonical rendering to stdout, or back to File with
// --write.
type FormatCmd struct {
	File  FileOrStdin `help:"Module envelope filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Width int         `help:"Target text width." default:"100"`
	Write bool        `help:"Write the result back to File instead of stdout." short:"w"`
	Yes   bool        `help:"Skip the overwrite confirmation prompt." short:"y"`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

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
	root := telemetry.FromContext(runCtx).Start(fmt.Sprintf("format %s", cmd.File.Filename))
	defer root.End()

	sourceContent, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	decodeTimer := root.Child("decode envelope")
	module, idx, err := astio.Unmarshal(sourceContent)
	decodeTimer.End()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	renderTimer := root.Child("AutoFmt")
	out, err := astfmt.AutoFmt(module, idx, cmd.Width)
	renderTimer.End()
	if err != nil {
		if formatErr, ok := err.(*diagnostics.FormatError); ok {
			tf := diagnostics.TextFormatter{}
			_, _ = fmt.Fprint(ctx.Stderr, tf.Format(formatErr))
			printError(ctx.Stderr, "cannot format module")
			return NewCommandError(1)
		}
		return err
	}

	if !cmd.Write || cmd.File.Filename == "<stdin>" {
		_, _ = fmt.Fprint(ctx.Stdout, out)
		return nil
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(fmt.Sprintf("Overwrite %q?", cmd.File.Filename))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Not overwritten")
			return nil
		}
	}

	if err := os.WriteFile(cmd.File.Filename, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.File.Filename, err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Formatted %s", pathStyle.Render(cmd.File.Filename)))
	return nil
}
