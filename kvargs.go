package kvargs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Keywords that show usage when given as any argument, compared
// case-insensitively.
var HelpKeywords = []string{"help", "usage", "what", "how", "?"}

// Declares parameters, and binds them from argument lists. A Manager must not
// be parsed concurrently.
type Manager struct {
	program  string
	appendix string

	params []*param
	byName map[string]*param
	// Set once a parameter with a default is added. Later params need
	// defaults too.
	defaultsStarted bool

	errWriter    io.Writer
	exit         func(code int)
	noExitOnHelp bool
	logger       *slog.Logger
}

func New(opts ...Opt) *Manager {
	m := &Manager{
		program:   filepath.Base(os.Args[0]),
		byName:    make(map[string]*param),
		errWriter: os.Stderr,
		exit:      os.Exit,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Adds a parameter to the end of the declaration order. The parameter is
// required unless Default is given. Once a parameter has a default, every
// later one must have one too.
func (m *Manager) Add(name string, opts ...ParamOpt) error {
	p, err := newParam(name, opts...)
	if err != nil {
		return err
	}
	if _, ok := m.byName[name]; ok {
		return DeclarationError{name, "declared more than once"}
	}
	if m.defaultsStarted && !p.hasDefault {
		return DeclarationOrderError{name, len(m.params)}
	}
	if p.hasDefault {
		m.defaultsStarted = true
	}
	m.params = append(m.params, p)
	m.byName[name] = p
	m.logger.Debug("declared argument",
		"name", name, "position", len(m.params), "type", p.typeName, "optional", p.hasDefault)
	return nil
}

// Like Add, but panics on error. Declaration errors are programming errors.
func (m *Manager) MustAdd(name string, opts ...ParamOpt) *Manager {
	if err := m.Add(name, opts...); err != nil {
		panic(fmt.Sprintf("kvargs: %s", err))
	}
	return m
}

// Parses the process arguments, excluding the program name.
func (m *Manager) ParseArgv() (Result, error) {
	return m.Parse(os.Args[1:])
}

// Parses args, and on error writes the error and usage, and exits: 2 for
// errors in the arguments, 1 otherwise.
func (m *Manager) ParseOrExit(args []string) Result {
	r, err := m.Parse(args)
	if err == nil {
		return r
	}
	if err == ErrHelp {
		// Usage is already shown.
		m.exit(1)
		return nil
	}
	color.New(color.FgRed, color.Bold).Fprint(m.errWriter, "error:")
	fmt.Fprintf(m.errWriter, " %s\n\n", err)
	m.WriteUsage(m.errWriter)
	if isUserError(err) {
		m.exit(2)
	} else {
		m.exit(1)
	}
	return nil
}
