package resp

import (
	"bytes"
	"strconv"
)

// CRLF terminates every line of the wire protocol, requests and replies
// alike.
const CRLF = "\r\n"

// EncodeInline renders a command as a single line: the verb, a space, and
// each argument separated by a space. No argument may be binary-unsafe
// (containing a space or CRLF) in this encoding; callers that need binary
// safety use EncodeBulk or EncodeMultiBulk instead.
func EncodeInline(verb string, args [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(verb)
	for _, a := range args {
		buf.WriteByte(' ')
		buf.Write(a)
	}
	buf.WriteString(CRLF)
	return buf.Bytes()
}

// EncodeBulk renders a command whose final argument is an arbitrary byte
// string: the verb and every argument but the last go out inline, followed
// by the last argument's length, then the payload itself terminated by its
// own CRLF. It panics if args is empty; a bulk command always has at least
// the payload argument.
func EncodeBulk(verb string, args [][]byte) []byte {
	if len(args) == 0 {
		panic("resp: EncodeBulk requires at least one argument")
	}
	payload := args[len(args)-1]

	var buf bytes.Buffer
	buf.WriteString(verb)
	for _, a := range args[:len(args)-1] {
		buf.WriteByte(' ')
		buf.Write(a)
	}
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(len(payload)))
	buf.WriteString(CRLF)
	buf.Write(payload)
	buf.WriteString(CRLF)
	return buf.Bytes()
}

// EncodeMultiBulk renders a command as a fully binary-safe array: a "*"
// count header followed by a "$len" + payload block for the verb and for
// every argument.
func EncodeMultiBulk(verb string, args [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte('*')
	buf.WriteString(strconv.Itoa(len(args) + 1))
	buf.WriteString(CRLF)
	writeBulkElement(&buf, []byte(verb))
	for _, a := range args {
		writeBulkElement(&buf, a)
	}
	return buf.Bytes()
}

func writeBulkElement(buf *bytes.Buffer, b []byte) {
	buf.WriteByte('$')
	buf.WriteString(strconv.Itoa(len(b)))
	buf.WriteString(CRLF)
	buf.Write(b)
	buf.WriteString(CRLF)
}
