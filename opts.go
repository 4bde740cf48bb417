package kvargs

import (
	"io"
	"log/slog"
)

type Opt func(m *Manager)

// Sets the program name shown in usage and returned in results. Defaults to
// the base name of the first process argument.
func Program(program string) Opt {
	return func(m *Manager) {
		m.program = program
	}
}

// Text written after the parameter table in usage.
func Appendix(text string) Opt {
	return func(m *Manager) {
		m.appendix = text
	}
}

// Where usage and errors are written. Defaults to os.Stderr.
func ErrWriter(w io.Writer) Opt {
	return func(m *Manager) {
		m.errWriter = w
	}
}

// Replaces os.Exit for help keywords and ParseOrExit.
func ExitFunc(exit func(code int)) Opt {
	return func(m *Manager) {
		m.exit = exit
	}
}

// Return ErrHelp after showing usage for a help keyword, instead of exiting.
func NoExitOnHelp() Opt {
	return func(m *Manager) {
		m.noExitOnHelp = true
	}
}

func Logger(logger *slog.Logger) Opt {
	return func(m *Manager) {
		m.logger = logger
	}
}
