package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"butuhkidul/internal/handler/http/respond"
)

// Timeout returns middleware that answers 504 when the handler has not
// written a response within duration. The request context is cancelled at
// the deadline so upstream calls stop as well.
//
// Only one of the handler and the timeout branch writes the response. The
// handler writes headers into its own map, copied out on WriteHeader.
func Timeout(duration time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutResponseWriter{
				ResponseWriter: w,
				header:         make(http.Header),
			}

			done := make(chan struct{})
			panicChan := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicChan <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicChan:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				if !tw.written {
					tw.flushHeader(http.StatusOK)
				}
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.written {
					respond.JSON(w, http.StatusGatewayTimeout, map[string]string{"error": "request timeout"})
				}
			}
		})
	}
}

// timeoutResponseWriter drops writes once the deadline has passed.
type timeoutResponseWriter struct {
	http.ResponseWriter
	header http.Header

	mu       sync.Mutex
	timedOut bool
	written  bool
}

func (w *timeoutResponseWriter) Header() http.Header {
	return w.header
}

func (w *timeoutResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut || w.written {
		return
	}
	w.flushHeader(statusCode)
}

func (w *timeoutResponseWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !w.written {
		w.flushHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

// flushHeader must be called with mu held.
func (w *timeoutResponseWriter) flushHeader(statusCode int) {
	dst := w.ResponseWriter.Header()
	for k, v := range w.header {
		dst[k] = v
	}
	w.written = true
	w.ResponseWriter.WriteHeader(statusCode)
}
