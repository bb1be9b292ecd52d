// Package responsewriter wraps http.ResponseWriter so middleware can see the final
// status code and body size. The logging, metrics and tracing middleware share it.
package responsewriter

import (
	"net/http"
)

// ResponseWriter remembers the first status sent and counts body bytes.
// A handler that never calls WriteHeader reports 200.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
	sent    bool
}

func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards only the first call; later calls are dropped as
// net/http itself would do with a "superfluous WriteHeader" warning.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.sent {
		return
	}
	w.status = code
	w.sent = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *ResponseWriter) StatusCode() int { return w.status }

func (w *ResponseWriter) BytesWritten() int { return w.written }

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool { return w.sent }

// Flush keeps RSS and export streams flowing through the middleware chain.
func (w *ResponseWriter) Flush() {
	w.WriteHeader(http.StatusOK)
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
