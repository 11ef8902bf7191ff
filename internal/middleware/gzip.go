package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// gzipWriter включает сжатие только при первой записи заголовка или тела.
// Пока ничего не записано, ответ можно отдать и без сжатия (например, 500 от Recoverer).
type gzipWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (g *gzipWriter) start() {
	if g.zw != nil {
		return
	}
	h := g.ResponseWriter.Header()
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")
	g.zw = gzip.NewWriter(g.ResponseWriter)
}

func (g *gzipWriter) Write(b []byte) (int, error) {
	g.start()
	return g.zw.Write(b)
}

func (g *gzipWriter) WriteHeader(statusCode int) {
	g.start()
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipWriter) close() error {
	if g.zw == nil {
		return nil
	}
	return g.zw.Close()
}

type gzipReader struct {
	io.ReadCloser
	zr *gzip.Reader
}

func (g *gzipReader) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipReader) Close() error {
	if err := g.ReadCloser.Close(); err != nil {
		return err
	}
	return g.zr.Close()
}

// WithGzip сжимает ответ, если клиент принимает gzip, и распаковывает gzip-тело запроса.
// Битое тело — plain-text 400.
func WithGzip(next http.Handler) http.Handler {
	return GzipWith(nil)(next)
}

// GzipWith — WithGzip со своим ответом на битое gzip-тело запроса.
func GzipWith(onInvalidBody http.HandlerFunc) func(http.Handler) http.Handler {
	if onInvalidBody == nil {
		onInvalidBody = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid gzip body", http.StatusBadRequest)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				zr, err := gzip.NewReader(r.Body)
				if err != nil {
					getLogger().Debugw("invalid gzip request body", "path", r.URL.Path, "error", err)
					onInvalidBody(w, r)
					return
				}
				r.Body = &gzipReader{ReadCloser: r.Body, zr: zr}
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipWriter{ResponseWriter: w}
			defer func() {
				if err := gw.close(); err != nil {
					getLogger().Errorw("gzip close failed", "error", err)
				}
			}()
			next.ServeHTTP(gw, r)
		})
	}
}
