package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip. Responses without a body carry no
// Content-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &wrappedReadCloser{
				Reader: zr,
				onClose: func() {
					zr.Close()
					gzipReaderPool.Put(zr)
				},
			}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		completed := false
		defer func() { gw.finish(completed) }()

		next.ServeHTTP(gw, r)
		completed = true
	})
}

type wrappedReadCloser struct {
	io.Reader
	onClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.onClose != nil {
		w.onClose()
		w.onClose = nil
	}
	return nil
}

// gzipResponseWriter holds the status back until the first body write, so
// a response without a body is sent uncompressed. The pooled gzip.Writer is
// taken on that first write only.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	status      int
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
		w.sendHeader()

		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	if w.zw == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) sendHeader() {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(w.status)
}

// finish flushes the compressed stream. When next panicked before writing,
// no status is committed so the recoverer upstream can still answer 500.
func (w *gzipResponseWriter) finish(completed bool) {
	if !w.wroteHeader {
		if !completed {
			return
		}
		w.sendHeader()
	}
	if w.zw == nil {
		return
	}
	w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil
}
