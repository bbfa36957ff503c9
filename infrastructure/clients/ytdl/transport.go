package ytdl

import (
	"net"
	"net/http"
	"time"
)

// TransportConfig sizes the pooled transport shared by every request.
type TransportConfig struct {
	// Ceiling for the whole exchange, body read included.
	Timeout time.Duration

	DialTimeout         time.Duration
	KeepAlive           time.Duration
	TLSHandshake        time.Duration
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		Timeout:             60 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
	}
}

// NewHTTPClient builds the keep-alive client created once per Client.
func NewHTTPClient(cfg TransportConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.TLSHandshake,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
