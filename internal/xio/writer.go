package xio

import (
	"io"
)

// NewResponseWriteCloser adapts a writer into an io.WriteCloser, for
// libraries that insist on closing their output. Close is forwarded when
// the underlying writer supports it and is a no-op otherwise.
func NewResponseWriteCloser(w io.Writer) io.WriteCloser {
	return &responseWriteCloser{
		Writer: w,
	}
}

type responseWriteCloser struct {
	io.Writer
}

func (rwc *responseWriteCloser) Close() error {
	if closer, ok := rwc.Writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
