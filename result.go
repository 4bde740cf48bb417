package kvargs

import (
	"fmt"
	"reflect"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Reserved Result keys.
const (
	ProgNameKey = "_progname_"
	IgnoredKey  = "_ignored_"
)

// Maps every declared name to its bound value, plus ProgNameKey and
// IgnoredKey.
type Result map[string]interface{}

func (r Result) ProgName() string {
	s, _ := r[ProgNameKey].(string)
	return s
}

// Tokens after "--". Never nil for a Result returned by Parse.
func (r Result) Ignored() []string {
	ss, _ := r[IgnoredKey].([]string)
	return ss
}

// Returns the value bound to name as a T.
func Get[T any](r Result, name string) (ret T, err error) {
	v, ok := r[name]
	if !ok {
		err = errors.Errorf("no argument %q", name)
		return
	}
	ret, ok = v.(T)
	if !ok {
		err = errors.Errorf("argument %q is %T, not %T", name, v, ret)
	}
	return
}

// Assigns entries of r to the fields of the struct pointed to by target.
// Fields are matched by `kvargs:"name"` tags, or by the snake_cased field
// name. Entries without a field are skipped, and fields tagged "-" are never
// set.
func (r Result) Bind(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("bind target must be a non-nil struct pointer, got %T", target)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		name := structFieldArgName(sf)
		if name == "-" {
			continue
		}
		val, ok := r[name]
		if !ok {
			continue
		}
		if err := setField(v.Field(i), val); err != nil {
			return errors.Wrapf(err, "binding %q to field %s", name, sf.Name)
		}
	}
	return nil
}

func structFieldArgName(sf reflect.StructField) string {
	if name := sf.Tag.Get("kvargs"); name != "" {
		return name
	}
	return xstrings.ToSnakeCase(sf.Name)
}

func setField(f reflect.Value, val interface{}) error {
	if val == nil {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}
	rv := reflect.ValueOf(val)
	switch {
	case rv.Type().AssignableTo(f.Type()):
		f.Set(rv)
	case isNumber(rv.Kind()) && isNumber(f.Kind()) && rv.Type().ConvertibleTo(f.Type()):
		f.Set(rv.Convert(f.Type()))
	default:
		return fmt.Errorf("%T is not assignable to %s", val, f.Type())
	}
	return nil
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
