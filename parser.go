package kvargs

import (
	"strings"

	"github.com/bradfitz/iter"
)

// State for a single Parse call.
type parser struct {
	m       *Manager
	values  map[string]interface{}
	bound   map[string]bool
	keyword bool
	ignored []string
}

// Binds args to the declared parameters. Tokens of the form name=value bind
// by name, others bind by their index in args to the parameter declared at
// that index. Once a name=value token is seen, the rest must be too. "--"
// ends parsing, and the tokens after it are returned under IgnoredKey.
//
// A help keyword writes usage and exits with status 1, unless NoExitOnHelp
// was given, in which case ErrHelp is returned.
func (m *Manager) Parse(args []string) (Result, error) {
	p := parser{
		m:       m,
		values:  make(map[string]interface{}, len(m.params)),
		bound:   make(map[string]bool, len(m.params)),
		ignored: []string{},
	}
	for _, pm := range m.params {
		if pm.hasDefault {
			p.values[pm.name] = pm.def
		}
	}
	if err := p.parse(args); err != nil {
		m.logger.Debug("argument parsing failed", "err", err)
		return nil, err
	}
	r := make(Result, len(p.values)+2)
	for k, v := range p.values {
		r[k] = v
	}
	r[ProgNameKey] = m.program
	r[IgnoredKey] = p.ignored
	return r, nil
}

func (p *parser) parse(args []string) error {
	for i, a := range args {
		if a == "--" {
			p.ignored = append(p.ignored, args[i+1:]...)
			break
		}
		if isHelpKeyword(a) {
			return p.m.help()
		}
		if err := p.parseOne(i, a); err != nil {
			return err
		}
	}
	return p.assertRequiredArgs()
}

func (p *parser) parseOne(i int, a string) error {
	var (
		pm  *param
		val string
	)
	if eq := strings.IndexByte(a, '='); eq == -1 {
		if p.keyword {
			return OrderError{i + 1}
		}
		if i >= len(p.m.params) {
			return ExcessArgumentError{i + 1, a}
		}
		pm, val = p.m.params[i], a
	} else {
		p.keyword = true
		name := a[:eq]
		var ok bool
		pm, ok = p.m.byName[name]
		if !ok {
			return UnknownArgumentError{name}
		}
		val = a[eq+1:]
	}
	v, err := pm.coerce(val)
	if err != nil {
		return ValidationError{pm.name, val, err}
	}
	p.values[pm.name] = v
	p.bound[pm.name] = true
	p.m.logger.Debug("bound argument", "name", pm.name, "index", i, "keyword", p.keyword)
	return nil
}

func (p *parser) assertRequiredArgs() error {
	for i := range iter.N(len(p.m.params)) {
		pm := p.m.params[i]
		if !pm.hasDefault && !p.bound[pm.name] {
			return MissingArgumentError{pm.name, i + 1}
		}
	}
	return nil
}

func isHelpKeyword(a string) bool {
	for _, kw := range HelpKeywords {
		if strings.EqualFold(a, kw) {
			return true
		}
	}
	return false
}

func (m *Manager) help() error {
	m.WriteUsage(m.errWriter)
	if !m.noExitOnHelp {
		m.exit(1)
	}
	return ErrHelp
}
