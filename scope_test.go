package kvargs

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declareExample(m *Manager) error {
	if err := m.Add("srcfile", Desc("input file path")); err != nil {
		return err
	}
	return m.Add("method", Desc("method nr: 1-4"), Type(IntRange(1, 4)), Default(3))
}

func TestWithExports(t *testing.T) {
	dst := map[string]interface{}{"other": true}
	var scope struct {
		Srcfile string
		Method  int
	}
	r, err := newTestManager().WithArgs([]string{"in", "method=2"}, declareExample, Into(dst), Scope(&scope))
	require.NoError(t, err)
	want := map[string]interface{}{
		"other":     true,
		"srcfile":   "in",
		"method":    2,
		ProgNameKey: "test",
		IgnoredKey:  []string{},
	}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("exported map mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "in", scope.Srcfile)
	assert.Equal(t, 2, scope.Method)
	assert.Equal(t, "in", r["srcfile"])
}

func TestWithDeclareError(t *testing.T) {
	var buf bytes.Buffer
	declErr := errors.New("declaration failed")
	dst := map[string]interface{}{}
	_, err := newTestManager(ErrWriter(&buf)).WithArgs([]string{"help"}, func(m *Manager) error {
		return declErr
	}, Into(dst))
	assert.True(t, err == declErr)
	assert.Empty(t, dst)
	// Parsing "help" would have written usage.
	assert.Empty(t, buf.String())

	_, err = newTestManager().WithArgs(nil, func(m *Manager) error {
		m.MustAdd("a", Default(1))
		return m.Add("b")
	})
	assert.EqualValues(t, DeclarationOrderError{"b", 1}, err)
}

func TestWithPanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	m := newTestManager(ErrWriter(&buf))
	assert.PanicsWithValue(t, "in scope", func() {
		m.WithArgs([]string{"help"}, func(m *Manager) error {
			panic("in scope")
		})
	})
	assert.Empty(t, buf.String())
}

func TestWithParseError(t *testing.T) {
	dst := map[string]interface{}{}
	_, err := newTestManager().WithArgs([]string{"in", "method=9"}, declareExample, Into(dst))
	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "method", ve.Name)
	assert.Empty(t, dst)
}

func TestWithExportError(t *testing.T) {
	var scope struct {
		Method string
	}
	r, err := newTestManager().WithArgs([]string{"in"}, declareExample, Scope(&scope))
	assert.Error(t, err)
	assert.Equal(t, 3, r["method"])
}
