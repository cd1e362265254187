package resp

// ClientError reports a misuse of the client API itself: bad arguments,
// calling Do while pipelining, dispatching an unregistered command name.
// It never reaches the wire.
type ClientError struct {
	Msg string
}

func (e *ClientError) Error() string { return "redline: client error: " + e.Msg }

// ServerError wraps the message carried by a "-" reply. The leading "ERR "
// prefix, if present, is stripped before storage.
type ServerError struct {
	Msg string
}

func (e *ServerError) Error() string { return "redline: server error: " + e.Msg }

// MalformedResponse means the bytes on the wire did not parse as a reply of
// any of the five known kinds, or carried a length or integer field that is
// not a number. Line terminators are not checked: a bare LF ends a line, and
// the two bytes after a bulk payload are consumed without inspection.
type MalformedResponse struct {
	Msg string
}

func (e *MalformedResponse) Error() string { return "redline: malformed response: " + e.Msg }

// CommunicationError wraps a transport-level failure: a dial error, a read
// or write timeout, an unexpected EOF. A failed dial leaves the transport
// unconnected, and a failed socket write or reply read closes it; a failure
// to set a deadline is returned without closing the connection.
type CommunicationError struct {
	Err error
}

func (e *CommunicationError) Error() string { return "redline: communication error: " + e.Err.Error() }
func (e *CommunicationError) Unwrap() error { return e.Err }

// PipelineError is raised when any command submitted in a pipeline fails to
// write or its reply fails to read or shape. Cause is the first such
// failure encountered; the pipeline's result list is discarded entirely.
type PipelineError struct {
	Cause error
}

func (e *PipelineError) Error() string { return "redline: pipeline error: " + e.Cause.Error() }
func (e *PipelineError) Unwrap() error { return e.Cause }
