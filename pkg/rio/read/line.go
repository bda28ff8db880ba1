package read

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"

	"github.com/ib-77/rio/pkg/rio"
)

// LineReader is the base implementation of Reader over any
// line-buffered byte stream. It owns its underlying stream
// exclusively; Close releases it.
//
// A LineReader value is an immutable handle: a successful read returns
// the advanced handle in Token.Next, and the handle it was issued on
// must not be read again (it remains valid to Close).
type LineReader struct {
	br     *bufio.Reader
	src    io.Closer
	line   int
	logger *zap.Logger
}

var _ Reader = (*LineReader)(nil)

// NewLineReader wraps an already-open stream. The factories in this
// package are the usual way to obtain one.
func NewLineReader(r io.Reader, c io.Closer, opts ...Option) *LineReader {
	o := newOptions(opts...)
	return newLineReader(r, c, o)
}

func newLineReader(r io.Reader, c io.Closer, o options) *LineReader {
	return &LineReader{
		br:     bufio.NewReaderSize(r, o.bufferSize),
		src:    c,
		logger: o.logger,
	}
}

// ReadString reads one line. A line that is blank after trimming
// yields empty; an I/O error, including end of input, yields a failure
// wrapping the cause.
func (lr *LineReader) ReadString() rio.Result[Token[string]] {
	line, err := lr.readLine()
	if err != nil {
		lr.logger.Debug("read failed", zap.Int("line", lr.line+1), zap.Error(err))
		return rio.Fail[Token[string]](fmt.Errorf("read line %d: %w", lr.line+1, err))
	}
	if strings.TrimSpace(line) == "" {
		return rio.Empty[Token[string]]()
	}
	return rio.Success(Token[string]{Value: line, Next: lr.next()})
}

func (lr *LineReader) ReadStringMsg(msg string) rio.Result[Token[string]] {
	return lr.ReadString()
}

// ReadInt reads one line and parses it as an integer. A blank line
// yields empty; a non-numeric line yields a failure.
func (lr *LineReader) ReadInt() rio.Result[Token[int]] {
	line, err := lr.readLine()
	if err != nil {
		lr.logger.Debug("read failed", zap.Int("line", lr.line+1), zap.Error(err))
		return rio.Fail[Token[int]](fmt.Errorf("read line %d: %w", lr.line+1, err))
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return rio.Empty[Token[int]]()
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return rio.Fail[Token[int]](fmt.Errorf("parse int at line %d: %w", lr.line+1, err))
	}
	return rio.Success(Token[int]{Value: n, Next: lr.next()})
}

func (lr *LineReader) ReadIntMsg(msg string) rio.Result[Token[int]] {
	return lr.ReadInt()
}

// Close releases the underlying stream. Reading after Close is outside
// the contract; only Close itself stays safe to call.
func (lr *LineReader) Close() error {
	lr.logger.Debug("closing reader", zap.Int("line", lr.line))
	return lr.src.Close()
}

func (lr *LineReader) next() *LineReader {
	return &LineReader{
		br:     lr.br,
		src:    lr.src,
		line:   lr.line + 1,
		logger: lr.logger,
	}
}

// readLine returns the next line without its terminator. Fragments of
// a line longer than the buffer are collected through a pooled scratch
// buffer instead of growing a fresh allocation per read.
func (lr *LineReader) readLine() (string, error) {
	chunk, isPrefix, err := lr.br.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(chunk), nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.Write(chunk) //nolint:errcheck // ByteBuffer.Write never fails
	for isPrefix {
		chunk, isPrefix, err = lr.br.ReadLine()
		if err != nil {
			return "", err
		}
		buf.Write(chunk) //nolint:errcheck
	}
	return buf.String(), nil
}

// peekLine looks at the first buffered line without consuming it.
func (lr *LineReader) peekLine() (string, error) {
	data, err := lr.br.Peek(lr.br.Size())
	if len(data) == 0 {
		if err == nil {
			err = io.EOF
		}
		return "", err
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return strings.TrimRight(string(data), "\r"), nil
}
