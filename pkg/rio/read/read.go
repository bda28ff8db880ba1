package read

import (
	"io"

	"github.com/ib-77/rio/pkg/rio"
)

// Token pairs a value read from an input source with the reader handle
// positioned after it. The handle the read was issued on must not be
// read again; continue from Next.
type Token[T any] struct {
	Value T
	Next  Reader
}

// Reader reads one line-oriented token per call. Each operation
// returns a three-variant result: a blank line is empty, not a
// failure, and any I/O or parse error is a failure wrapping its cause.
//
// The *Msg variants carry a call-site description and delegate to the
// base operation unchanged.
type Reader interface {
	ReadString() rio.Result[Token[string]]
	ReadStringMsg(msg string) rio.Result[Token[string]]
	ReadInt() rio.Result[Token[int]]
	ReadIntMsg(msg string) rio.Result[Token[int]]
	io.Closer
}
