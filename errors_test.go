package kvargs

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	for _, _case := range []struct {
		err error
		msg string
	}{
		{OrderError{2}, "positional argument 2 follows keyword argument"},
		{MissingArgumentError{"a", 1}, `missing required positional argument: "a" at 1`},
		{DeclarationOrderError{"c", 2}, `non-default argument "c" follows default argument at 2`},
		{ExcessArgumentError{3, "x"}, `excess argument 3: "x"`},
		{UnknownArgumentError{"c"}, `unknown argument: "c"`},
		{DeclarationError{"", "empty name"}, `bad declaration "": empty name`},
	} {
		assert.EqualError(t, _case.err, _case.msg)
	}
}

func TestValidationErrorCause(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := error(ValidationError{"n", "x", cause})
	assert.Equal(t, cause, errors.Cause(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Contains(t, fmt.Sprintf("%+v", err), `invalid value "x" for argument "n"`)
	assert.Contains(t, fmt.Sprintf("%+v", err), "invalid syntax")
}

func TestIsUserError(t *testing.T) {
	assert.True(t, isUserError(OrderError{1}))
	assert.True(t, isUserError(errors.Wrap(MissingArgumentError{"a", 1}, "parsing")))
	assert.True(t, isUserError(ValidationError{"a", "x", errors.New("bad")}))
	assert.False(t, isUserError(DeclarationOrderError{"a", 1}))
	assert.False(t, isUserError(ErrHelp))
}
