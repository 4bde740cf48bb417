package kvargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      error
	expected Result
}

func noErrorCase(expected Result, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, newManager func() *Manager) {
	actual, err := newManager().Parse(me.args)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	if me.err != nil {
		return
	}
	expected := Result{ProgNameKey: "test", IgnoredKey: []string{}}
	for k, v := range me.expected {
		expected[k] = v
	}
	assert.EqualValues(t, expected, actual, "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, newManager func() *Manager) {
	for _, _case := range cases {
		_case.Run(t, newManager)
	}
}
