package compress

import (
	"compress/gzip"
	"io"
	"net/http"
)

// GzipWriter wraps an http.ResponseWriter, compressing everything written
// through it.
type GzipWriter struct {
	w  http.ResponseWriter
	zw *gzip.Writer
}

// NewGzipWriter creates a new GzipWriter over the response writer.
func NewGzipWriter(w http.ResponseWriter) *GzipWriter {
	return &GzipWriter{
		w:  w,
		zw: gzip.NewWriter(w),
	}
}

func (g *GzipWriter) Header() http.Header {
	return g.w.Header()
}

func (g *GzipWriter) WriteHeader(statusCode int) {
	g.w.WriteHeader(statusCode)
}

// Write writes compressed data to the underlying response.
func (g *GzipWriter) Write(p []byte) (int, error) {
	return g.zw.Write(p)
}

// Close flushes the remaining compressed data.
func (g *GzipWriter) Close() error {
	return g.zw.Close()
}

// GzipReader implements io.ReadCloser for reading a gzip-compressed request
// body transparently.
type GzipReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

// NewGzipReader creates a new GzipReader over the request body.
func NewGzipReader(r io.ReadCloser) (*GzipReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &GzipReader{
		r:  r,
		zr: zr,
	}, nil
}

// Read reads decompressed data.
func (g *GzipReader) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

// Close closes both the decompressor and the underlying body.
func (g *GzipReader) Close() error {
	if err := g.r.Close(); err != nil {
		return err
	}
	return g.zr.Close()
}
