// Package transport builds the HTTP plumbing shared by the client runtime
// and the command line tools: a tuned base transport with HTTP/2 enabled and
// a round tripper that negotiates gzip, brotli, and zstd response encodings.
package transport

import (
	"compress/gzip"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/net/http2"
)

// Config controls the connection pool and HTTP/2 keepalive behavior of
// Base. The zero value selects defaults suitable for interactive API use.
type Config struct {
	MaxIdleConns        int           // default 100
	MaxIdleConnsPerHost int           // default 10
	IdleConnTimeout     time.Duration // default 90s
	TLSHandshakeTimeout time.Duration // default 10s
	DialTimeout         time.Duration // default 30s
	KeepAlive           time.Duration // default 30s
	ReadIdleTimeout     time.Duration // HTTP/2 health-check ping interval, default 30s
	PingTimeout         time.Duration // HTTP/2 ping response deadline, default 15s
}

func (c Config) withDefaults() Config {
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 100
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = 10
	}
	if c.IdleConnTimeout == 0 {
		c.IdleConnTimeout = 90 * time.Second
	}
	if c.TLSHandshakeTimeout == 0 {
		c.TLSHandshakeTimeout = 10 * time.Second
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 30 * time.Second
	}
	if c.KeepAlive == 0 {
		c.KeepAlive = 30 * time.Second
	}
	if c.ReadIdleTimeout == 0 {
		c.ReadIdleTimeout = 30 * time.Second
	}
	if c.PingTimeout == 0 {
		c.PingTimeout = 15 * time.Second
	}
	return c
}

// Base returns a tuned *http.Transport. HTTP/2 is enabled with read-idle
// pings so dead connections are noticed instead of hanging requests, and
// TLS is floored at 1.2.
func Base(cfg Config) *http.Transport {
	cfg = cfg.withDefaults()
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}
	t := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ExpectContinueTimeout: time.Second,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
	if h2, err := http2.ConfigureTransports(t); err == nil {
		h2.ReadIdleTimeout = cfg.ReadIdleTimeout
		h2.PingTimeout = cfg.PingTimeout
	}
	return t
}

const acceptEncoding = "gzip, br, zstd"

// Decompression wraps rt so requests advertise gzip, brotli, and zstd and
// encoded responses are decoded transparently. Setting Accept-Encoding
// ourselves disables the net/http built-in gzip path, so all three codecs
// funnel through here.
func Decompression(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &decompressor{rt: rt}
}

type decompressor struct {
	rt http.RoundTripper
}

func (d *decompressor) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" && req.Method != http.MethodHead {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	resp, err := d.rt.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	var (
		reader  io.Reader
		closers []func() error
	)
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gr, gerr := gzip.NewReader(resp.Body)
		if gerr != nil {
			resp.Body.Close()
			return nil, gerr
		}
		reader = gr
		closers = []func() error{gr.Close, resp.Body.Close}
	case "br":
		reader = brotli.NewReader(resp.Body)
		closers = []func() error{resp.Body.Close}
	case "zstd":
		zr, zerr := zstd.NewReader(resp.Body)
		if zerr != nil {
			resp.Body.Close()
			return nil, zerr
		}
		reader = zr
		closers = []func() error{
			func() error { zr.Close(); return nil },
			resp.Body.Close,
		}
	default:
		return resp, nil
	}

	resp.Body = &decodedBody{Reader: reader, closers: closers}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

// decodedBody closes the decoder and the wrapped network body together.
type decodedBody struct {
	io.Reader
	closers []func() error
}

func (b *decodedBody) Close() error {
	var first error
	for _, c := range b.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
