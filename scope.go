package kvargs

// Receives a Result after a successful With.
type Export func(r Result) error

// Copies every Result entry into dst.
func Into(dst map[string]interface{}) Export {
	return func(r Result) error {
		for k, v := range r {
			dst[k] = v
		}
		return nil
	}
}

// Assigns Result entries to the fields of the struct pointed to by target.
// See Result.Bind.
func Scope(target interface{}) Export {
	return func(r Result) error {
		return r.Bind(target)
	}
}

// Runs declare, then parses the process arguments and hands the Result to
// each export in order. If declare fails, its error is returned as is and
// nothing is parsed. Panics in declare are not recovered.
func (m *Manager) With(declare func(m *Manager) error, exports ...Export) (Result, error) {
	return m.with(declare, m.ParseArgv, exports)
}

// Like With, but parses args.
func (m *Manager) WithArgs(args []string, declare func(m *Manager) error, exports ...Export) (Result, error) {
	return m.with(declare, func() (Result, error) { return m.Parse(args) }, exports)
}

func (m *Manager) with(declare func(*Manager) error, parse func() (Result, error), exports []Export) (Result, error) {
	if err := declare(m); err != nil {
		return nil, err
	}
	r, err := parse()
	if err != nil {
		return nil, err
	}
	for _, e := range exports {
		if err := e(r); err != nil {
			return r, err
		}
	}
	return r, nil
}
