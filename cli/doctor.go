package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/rw1nkler/xls/astfmt"
	"github.com/rw1nkler/xls/internal/astio"
	"github.com/rw1nkler/xls/internal/diagnostics"
)

// DoctorCmd groups the engine-debugging subcommands: dumping the raw
// document tree AutoFmt builds before rendering (via the arena's own
// Dump), and dumping the fed-in AST shape (via a reflective struct
// printer).
type DoctorCmd struct {
	Doc DoctorDocCmd `cmd:"" help:"Dump the pre-render document tree for a module envelope."`
	Ast DoctorAstCmd `cmd:"" help:"Dump the AST shape of a module envelope."`
}

type DoctorDocCmd struct {
	File FileOrStdin `help:"Module envelope filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DoctorDocCmd) Run(ctx *kong.Context) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	data, err := cmd.File.GetSourceContent()
	if err != nil {
		return err
	}
	module, idx, err := astio.Unmarshal(data)
	if err != nil {
		return err
	}
	arena, root, err := astfmt.BuildDoc(module, idx)
	if err != nil {
		if formatErr, ok := err.(*diagnostics.FormatError); ok {
			tf := diagnostics.TextFormatter{}
			_, _ = fmt.Fprint(ctx.Stderr, tf.Format(formatErr))
			return NewCommandError(1)
		}
		return err
	}
	_, _ = fmt.Fprint(ctx.Stdout, arena.Dump(root))
	return nil
}

type DoctorAstCmd struct {
	File FileOrStdin `help:"Module envelope filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DoctorAstCmd) Run(ctx *kong.Context) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	data, err := cmd.File.GetSourceContent()
	if err != nil {
		return err
	}
	module, _, err := astio.Unmarshal(data)
	if err != nil {
		return err
	}
	repr.New(ctx.Stdout, repr.Indent("  "), repr.OmitEmpty(true)).Println(module)
	return nil
}
