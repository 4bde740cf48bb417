package kvargs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	r := Result{"n": 3, "s": "x"}
	n, err := Get[int](r, "n")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = Get[string](r, "n")
	assert.EqualError(t, err, `argument "n" is int, not string`)
	_, err = Get[int](r, "m")
	assert.EqualError(t, err, `no argument "m"`)
}

func TestBind(t *testing.T) {
	var cfg struct {
		SrcFile  string
		Method   int64
		Timeout  time.Duration `kvargs:"wait"`
		Prog     string        `kvargs:"_progname_"`
		Ignored  []string      `kvargs:"_ignored_"`
		Skipped  string        `kvargs:"-"`
		Missing  string
		unexport string
	}
	cfg.Missing = "kept"
	r := Result{
		"src_file":  "a",
		"method":    3,
		"wait":      time.Second,
		"skipped":   "no",
		"unexport":  "no",
		"extra":     1,
		ProgNameKey: "prog",
		IgnoredKey:  []string{"x"},
	}
	require.NoError(t, r.Bind(&cfg))
	assert.Equal(t, "a", cfg.SrcFile)
	assert.EqualValues(t, 3, cfg.Method)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, "prog", cfg.Prog)
	assert.Equal(t, []string{"x"}, cfg.Ignored)
	assert.Empty(t, cfg.Skipped)
	assert.Equal(t, "kept", cfg.Missing)
	assert.Empty(t, cfg.unexport)
}

func TestBindErrors(t *testing.T) {
	var cfg struct {
		A int
	}
	assert.Error(t, Result{"a": "x"}.Bind(&cfg))
	assert.Error(t, Result{}.Bind(cfg))
	assert.Error(t, Result{}.Bind((*struct{})(nil)))
	assert.NoError(t, Result{"a": nil}.Bind(&cfg))
}
