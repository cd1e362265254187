package command

import (
	"fmt"
	"strconv"
	"time"
)

// Pairs represents an ordered key/value argument list. Wherever a Pairs
// value appears in a dispatch call's argument list, BuildArgs flattens it
// in place into an even-length run of byte strings, preserving the given
// order, instead of converting it as a single opaque value. HSET, MSET and
// the SORT option filter all consume it — SORT in particular is called as
// sort("mykey", opts.ToPairs()), with the key as a separate, preceding
// argument, so the flattening has to work positionally, not just for a
// lone Pairs argument.
type Pairs [][2]string

// BuildArgs converts a caller-supplied argument list into the flattened
// byte-string form a Command carries. Each element is converted with
// ToBytes, except a Pairs element, which is flattened key by key in place.
func BuildArgs(raw []interface{}) [][]byte {
	out := make([][]byte, 0, len(raw))
	for _, v := range raw {
		if pairs, ok := v.(Pairs); ok {
			for _, p := range pairs {
				out = append(out, []byte(p[0]), []byte(p[1]))
			}
			continue
		}
		out = append(out, ToBytes(v))
	}
	return out
}

// ToBytes converts a single Go value to the byte string sent on the wire.
// The conversion rules mirror what callers of a Redis client library
// generally expect: strings and []byte pass through untouched, booleans
// become "1"/"0", nil becomes the empty string, integral and duration
// values are formatted in base 10, and anything else falls back to
// fmt.Sprint.
func ToBytes(v interface{}) []byte {
	switch t := v.(type) {
	case []byte:
		return t
	case string:
		return []byte(t)
	case bool:
		if t {
			return []byte("1")
		}
		return []byte("0")
	case nil:
		return []byte("")
	case int:
		return []byte(strconv.Itoa(t))
	case int64:
		return []byte(strconv.FormatInt(t, 10))
	case time.Duration:
		return []byte(strconv.FormatInt(int64(t/time.Second), 10))
	default:
		return []byte(fmt.Sprint(t))
	}
}
