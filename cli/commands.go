package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
	NoColor   bool `help:"Accepted but has no effect: output styling is not changed by this flag."`
}

type Commands struct {
	Globals

	Format FormatCmd `cmd:"" help:"Format a module envelope to canonical text."`
	Check  CheckCmd  `cmd:"" help:"Report envelopes whose rendering violates an output guarantee."`
	Watch  WatchCmd  `cmd:"" help:"Reprint a module envelope's canonical rendering on every write."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging the formatter engine."`
}
