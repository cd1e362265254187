package command

import "strings"

// SlaveofFilter implements SLAVEOF's no-argument shorthand: calling it with
// nothing is equivalent to the two-token command SLAVEOF NO ONE.
func SlaveofFilter(args [][]byte) [][]byte {
	if len(args) == 0 {
		return [][]byte{[]byte("NO"), []byte("ONE")}
	}
	return args
}

// SortOptions is the mapping-shaped second argument SORT accepts. Zero
// values are omitted from the wire request. The key being sorted is not
// part of SortOptions; it is passed as SORT's first argument.
type SortOptions struct {
	By      string
	Get     string
	Offset  int64
	Count   int64
	HasLimit bool
	Order   string // "", "ASC" or "DESC"
	Alpha   bool
	Store   string
}

// ToPairs renders the options as an ordered key/value list. Flags with no
// natural value (ALPHA) carry an empty string; SortArgFilter recognizes and
// drops it.
func (o *SortOptions) ToPairs() Pairs {
	var p Pairs
	if o.By != "" {
		p = append(p, [2]string{"BY", o.By})
	}
	if o.Get != "" {
		p = append(p, [2]string{"GET", o.Get})
	}
	if o.HasLimit {
		p = append(p, [2]string{"LIMIT", formatLimit(o.Offset, o.Count)})
	}
	if o.Order != "" {
		p = append(p, [2]string{"ORDER", o.Order})
	}
	if o.Alpha {
		p = append(p, [2]string{"ALPHA", ""})
	}
	if o.Store != "" {
		p = append(p, [2]string{"STORE", o.Store})
	}
	return p
}

func formatLimit(offset, count int64) string {
	return ToBytesString(offset) + " " + ToBytesString(count)
}

// ToBytesString is a small convenience wrapper around ToBytes for callers
// building option strings by hand.
func ToBytesString(v interface{}) string { return string(ToBytes(v)) }

// SortArgFilter rewrites SORT's flattened [key, K1, V1, K2, V2, ...]
// argument list, produced by flattening a SortOptions.ToPairs(), into the
// fixed suffix order the wire command expects:
// key [BY pattern] [GET pattern] [LIMIT off cnt] [ASC|DESC] [ALPHA] [STORE dst]
func SortArgFilter(args [][]byte) [][]byte {
	if len(args) == 0 {
		return args
	}
	pairs := map[string]string{}
	for i := 1; i+1 < len(args); i += 2 {
		pairs[string(args[i])] = string(args[i+1])
	}

	out := [][]byte{args[0]}
	if v, ok := pairs["BY"]; ok {
		out = append(out, []byte("BY"), []byte(v))
	}
	if v, ok := pairs["GET"]; ok {
		out = append(out, []byte("GET"), []byte(v))
	}
	if v, ok := pairs["LIMIT"]; ok {
		parts := strings.Fields(v)
		if len(parts) == 2 {
			out = append(out, []byte("LIMIT"), []byte(parts[0]), []byte(parts[1]))
		}
	}
	if v, ok := pairs["ORDER"]; ok {
		out = append(out, []byte(v))
	}
	if _, ok := pairs["ALPHA"]; ok {
		out = append(out, []byte("ALPHA"))
	}
	if v, ok := pairs["STORE"]; ok {
		out = append(out, []byte("STORE"), []byte(v))
	}
	return out
}
