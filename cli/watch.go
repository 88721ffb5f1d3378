package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/rw1nkler/xls/astfmt"
	"github.com/rw1nkler/xls/internal/astio"
	"github.com/rw1nkler/xls/internal/diagnostics"
	"github.com/rw1nkler/xls/telemetry"
)

// debounceDelay absorbs the burst of write events a single editor save
// can produce (truncate, then write, then chmod) into one reformat pass.
const debounceDelay = 100 * time.Millisecond

// WatchCmd watches a single module envelope and reprints its canonical
// rendering on every write, for editor-less live formatting during
// authoring. There is no parser in this module (see internal/astio),
// so the file being watched must already be a valid envelope produced
// by astio; WatchCmd does not pick up hand-edited source text. The
// rendering is written to Out rather than back over File: File's bytes
// are the envelope, not the rendered text, and overwriting it would
// leave nothing for the next write event to decode.
type WatchCmd struct {
	File  string `help:"Module envelope filename to watch." arg:""`
	Out   string `help:"File to write the rendering to on each change (default: stdout)." optional:""`
	Width int    `help:"Target text width." default:"100"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	runCtx := context.Background()
	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
	}

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(cmd.File))

	var debounceTimer *time.Timer
	reformat := func() {
		root := telemetry.FromContext(runCtx).Start(fmt.Sprintf("watch %s", cmd.File))
		defer func() {
			root.End()
			if collector != nil {
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		}()

		if err := cmd.reformatFile(ctx, root); err != nil {
			printError(ctx.Stderr, err.Error())
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, reformat)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

func (cmd *WatchCmd) reformatFile(ctx *kong.Context, root telemetry.Timer) error {
	data, err := readEnvelope(cmd.File)
	if err != nil {
		return err
	}

	decodeTimer := root.Child("decode envelope")
	module, idx, err := astio.Unmarshal(data)
	decodeTimer.End()
	if err != nil {
		return err
	}

	renderTimer := root.Child("AutoFmt")
	out, err := astfmt.AutoFmt(module, idx, cmd.Width)
	renderTimer.End()
	if err != nil {
		if formatErr, ok := err.(*diagnostics.FormatError); ok {
			tf := diagnostics.TextFormatter{}
			_, _ = fmt.Fprint(ctx.Stderr, tf.Format(formatErr))
			return fmt.Errorf("cannot format %s", cmd.File)
		}
		return err
	}

	if cmd.Out == "" {
		_, _ = fmt.Fprint(ctx.Stdout, out)
		return nil
	}
	if err := writeEnvelope(cmd.Out, []byte(out)); err != nil {
		return err
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Reformatted %s -> %s", pathStyle.Render(cmd.File), pathStyle.Render(cmd.Out)))
	return nil
}
