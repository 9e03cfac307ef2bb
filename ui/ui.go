package ui

import "io"

// UI is the terminal surface the commands print through. Production code
// uses TerminalUI; tests use RecordingUI, which captures output and serves
// scripted answers.
//
// Indent returns a child UI one level deeper sharing the parent's writer
// and reader, so nested scopes keep output ordering and input sequencing.
type UI interface {
	// Info writes a neutral status line.
	Info(format string, args ...any)
	// Success writes a positive outcome in green.
	Success(format string, args ...any)
	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)
	// Error writes a failure in red. It doesn't exit; callers decide
	// what happens next.
	Error(format string, args ...any)

	// Section writes a separator line centred around a title.
	Section(title string)
	// KeyValue renders an aligned label/value block.
	KeyValue(rows [][2]string)
	// Table renders a bordered table. Empty headers skip the header row.
	Table(headers []string, rows [][]string)
	// Spinner starts an animated spinner and returns its stop function.
	Spinner(msg string) func()

	// Ask shows a "> " prompt and reads a line, repeating until validate
	// accepts it. A nil validator accepts everything.
	Ask(validate func(string) error) string
	// Confirm asks a yes/no question; empty input takes the default.
	Confirm(prompt string, defaultYes bool) bool

	Indent() UI
	// Writer exposes the output with the current indentation applied to
	// every line, for callers that want a plain io.Writer.
	Writer() io.Writer
}
