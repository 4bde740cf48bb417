package kvargs

import (
	"strings"
)

const defaultDesc = "--"

type param struct {
	name     string
	desc     string
	typeName string
	coerce   coerceFunc
	// Value bound when no token names this param. Only meaningful if
	// hasDefault.
	def        interface{}
	hasDefault bool

	// Deferred from ParamOpts, reported by Add.
	err error
}

type ParamOpt func(p *param)

// Text shown in the description column of the usage page.
func Desc(desc string) ParamOpt {
	return func(p *param) {
		p.desc = desc
	}
}

// Sets the coercion applied to the raw text of the argument. f must be a
// func(string) T or func(string) (T, error). A returned error, or a panic,
// rejects the value.
func Type(f interface{}) ParamOpt {
	return func(p *param) {
		cf, err := newCoerceFunc(f)
		if err != nil {
			p.err = err
			return
		}
		p.coerce = cf
		if p.typeName == "" {
			p.typeName = coerceFuncName(f)
		}
	}
}

// Overrides the name derived from the coercion function in usage.
func TypeName(name string) ParamOpt {
	return func(p *param) {
		p.typeName = name
	}
}

// Makes the parameter optional. The value is used as given, without
// coercion.
func Default(v interface{}) ParamOpt {
	return func(p *param) {
		p.def = v
		p.hasDefault = true
	}
}

func newParam(name string, opts ...ParamOpt) (*param, error) {
	p := &param{
		name: name,
		desc: defaultDesc,
	}
	// TypeName may come before or after Type.
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, DeclarationError{name, p.err.Error()}
	}
	if p.coerce == nil {
		p.coerce, _ = newCoerceFunc(String)
		if p.typeName == "" {
			p.typeName = "string"
		}
	}
	switch {
	case name == "":
		return nil, DeclarationError{name, "empty name"}
	case name == ProgNameKey || name == IgnoredKey:
		return nil, DeclarationError{name, "reserved name"}
	case strings.ContainsRune(name, '='):
		return nil, DeclarationError{name, "name contains '='"}
	}
	return p, nil
}

func (p *param) defaultString() string {
	if !p.hasDefault {
		return "none"
	}
	return formatValue(p.def)
}
