package kvargs

import (
	"github.com/dustin/go-humanize"
)

// A nice builtin type for human readable byte quantities, for example 100GB.
// See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

// Coerces a byte quantity. Use with Type.
func ParseBytes(s string) (Bytes, error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return Bytes(ui64), nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
