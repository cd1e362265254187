package command

import (
	"strings"

	"github.com/cachemir/redline/pkg/resp"
)

func asServerError(r *resp.Reply) (*resp.ServerError, bool) {
	if r.Kind == resp.KindError {
		return &resp.ServerError{Msg: r.ErrMsg}, true
	}
	return nil, false
}

// ShapeStatus is the default shaper for commands whose successful reply is
// a status line. The literal OK is lifted to the boolean true; any other
// status text is returned as-is.
func ShapeStatus(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindStatus {
		return nil, &resp.MalformedResponse{Msg: "expected status reply, got " + r.Kind.String()}
	}
	if r.Status == "OK" {
		return true, nil
	}
	return r.Status, nil
}

// ShapeBool coerces an integer reply to a boolean: any nonzero value is
// true. It backs EXISTS, DEL, the *NX family, SADD/SREM/SMOVE/SISMEMBER,
// the EXPIRE family, MOVE and ZADD/ZREM.
func ShapeBool(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindInteger {
		return nil, &resp.MalformedResponse{Msg: "expected integer reply, got " + r.Kind.String()}
	}
	if r.IntNil {
		return false, nil
	}
	return r.Int != 0, nil
}

// ShapeInteger returns the raw integer reply, or nil if the server sent no
// value.
func ShapeInteger(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindInteger {
		return nil, &resp.MalformedResponse{Msg: "expected integer reply, got " + r.Kind.String()}
	}
	if r.IntNil {
		return nil, nil
	}
	return r.Int, nil
}

// ShapeBulkString returns the bulk payload as a string, or nil if absent.
func ShapeBulkString(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindBulk {
		return nil, &resp.MalformedResponse{Msg: "expected bulk reply, got " + r.Kind.String()}
	}
	if r.BulkNil {
		return nil, nil
	}
	return string(r.Bulk), nil
}

// ShapeRandomKey behaves like ShapeBulkString except that an empty string
// (the historical way an "no keys" reply was represented) is also treated
// as absent.
func ShapeRandomKey(r *resp.Reply) (interface{}, error) {
	v, err := ShapeBulkString(r)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	return v, nil
}

// ShapePing returns true iff the server's payload, status or bulk, equals
// PONG.
func ShapePing(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	switch r.Kind {
	case resp.KindStatus:
		return r.Status == "PONG", nil
	case resp.KindBulk:
		if r.BulkNil {
			return false, nil
		}
		return string(r.Bulk) == "PONG", nil
	default:
		return false, nil
	}
}

// ShapeArrayOfStrings turns a multibulk of bulk elements into a []string.
// A nil array (as well as an empty one) yields an empty, non-nil slice, so
// callers never have to special-case KEYS or SMEMBERS returning nothing.
func ShapeArrayOfStrings(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindMultiBulk {
		return nil, &resp.MalformedResponse{Msg: "expected multibulk reply, got " + r.Kind.String()}
	}
	if r.ArrayNil {
		return []string{}, nil
	}
	out := make([]string, len(r.Array))
	for i, item := range r.Array {
		if item.Kind == resp.KindBulk && !item.BulkNil {
			out[i] = string(item.Bulk)
		}
	}
	return out, nil
}

// ShapeOptionalStringArray turns a multibulk into a []*string, preserving
// holes (nil bulk elements) at their position. MGET is the classic user.
func ShapeOptionalStringArray(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindMultiBulk {
		return nil, &resp.MalformedResponse{Msg: "expected multibulk reply, got " + r.Kind.String()}
	}
	if r.ArrayNil {
		return []*string{}, nil
	}
	out := make([]*string, len(r.Array))
	for i, item := range r.Array {
		if item.Kind == resp.KindBulk && !item.BulkNil {
			s := string(item.Bulk)
			out[i] = &s
		}
	}
	return out, nil
}

// ShapeHash turns a multibulk of alternating field/value elements, as
// returned by HGETALL, into a map[string]string.
func ShapeHash(r *resp.Reply) (interface{}, error) {
	if e, ok := asServerError(r); ok {
		return nil, e
	}
	if r.Kind != resp.KindMultiBulk {
		return nil, &resp.MalformedResponse{Msg: "expected multibulk reply, got " + r.Kind.String()}
	}
	m := make(map[string]string, len(r.Array)/2)
	if r.ArrayNil {
		return m, nil
	}
	for i := 0; i+1 < len(r.Array); i += 2 {
		field, value := r.Array[i], r.Array[i+1]
		if field.Kind == resp.KindBulk && value.Kind == resp.KindBulk {
			m[string(field.Bulk)] = string(value.Bulk)
		}
	}
	return m, nil
}

// InfoEntry is one line of an INFO reply, split at its first colon.
type InfoEntry struct {
	Key   string
	Value string
}

// InfoMap preserves the server's line order, unlike a Go map, since INFO
// groups related keys together under section comments.
type InfoMap []InfoEntry

// Get returns the value for the first entry matching key.
func (m InfoMap) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// ShapeInfo parses INFO's bulk payload into an ordered key/value mapping.
// Lines without a colon (section headers, blank separators) are skipped.
func ShapeInfo(r *resp.Reply) (interface{}, error) {
	v, err := ShapeBulkString(r)
	if err != nil {
		return nil, err
	}
	s, _ := v.(string)
	if s == "" {
		return InfoMap{}, nil
	}
	lines := strings.Split(s, "\r\n")
	out := make(InfoMap, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		out = append(out, InfoEntry{Key: line[:idx], Value: line[idx+1:]})
	}
	return out, nil
}
