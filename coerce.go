package kvargs

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Converts the raw text of an argument into its bound value.
type coerceFunc func(raw string) (interface{}, error)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Wraps f, which must be func(string) T or func(string) (T, error). Panics
// inside f are returned as errors.
func newCoerceFunc(f interface{}) (coerceFunc, error) {
	if f == nil {
		return nil, errors.New("nil coercion function")
	}
	if cf, ok := f.(func(string) (interface{}, error)); ok {
		return guardPanics(cf), nil
	}
	v := reflect.ValueOf(f)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, errors.Errorf("coercion must be a function, got %s", t)
	}
	if t.NumIn() != 1 || t.In(0).Kind() != reflect.String || t.IsVariadic() {
		return nil, errors.Errorf("coercion %s must take a single string", t)
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return nil, errors.Errorf("second result of coercion %s must be error", t)
		}
	default:
		return nil, errors.Errorf("coercion %s must return a value and optionally an error", t)
	}
	return guardPanics(func(raw string) (interface{}, error) {
		out := v.Call([]reflect.Value{reflect.ValueOf(raw).Convert(t.In(0))})
		if len(out) > 1 {
			if err, _ := out[1].Interface().(error); err != nil {
				return nil, err
			}
		}
		return out[0].Interface(), nil
	}), nil
}

func guardPanics(f coerceFunc) coerceFunc {
	return func(raw string) (ret interface{}, err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}()
		return f(raw)
	}
}

// Derives a display name from the function's symbol, so ExistingPath shows
// as "existing_path".
func coerceFuncName(f interface{}) string {
	rf := runtime.FuncForPC(reflect.ValueOf(f).Pointer())
	if rf == nil {
		return "func"
	}
	name := rf.Name()
	name = name[strings.LastIndexByte(name, '/')+1:]
	name = strings.TrimSuffix(name, "-fm")
	name = strings.Replace(name, "[...]", "", -1)
	parts := strings.Split(name, ".")
	// Closures returned by constructors like IntRange are named after them.
	for len(parts) > 1 && closureName.MatchString(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return xstrings.ToSnakeCase(parts[len(parts)-1])
}

var closureName = regexp.MustCompile(`^(func|gowrap)?\d+$`)
