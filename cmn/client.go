// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/sellerkit/mws/cmn/cos"
)

const (
	DfltDialupTimeout = 10 * time.Second
	DfltKeepaliveTCP  = 30 * time.Second
)

// [NOTE]
// net/http.DefaultTransport has the following defaults:
//
// - MaxIdleConns:          100,
// - MaxIdleConnsPerHost :  2 (via DefaultMaxIdleConnsPerHost)
// - IdleConnTimeout:       90 * time.Second,
//
// Following are the defaults we use instead - the service caps each seller
// account at a handful of concurrent requests, so a small warm pool with a
// long idle timeout fits the traffic shape:
const (
	DefaultMaxIdleConns        = 8
	DefaultMaxIdleConnsPerHost = 4
	DefaultIdleConnTimeout     = 60 * time.Second
)

type (
	// assorted http(s) client options
	TransportArgs struct {
		DialTimeout      time.Duration
		Timeout          time.Duration
		IdleConnTimeout  time.Duration
		IdleConnsPerHost int
		MaxIdleConns     int
		UseHTTPProxyEnv  bool
	}
	TLSArgs struct {
		ClientCA    string
		Certificate string
		Key         string
		SkipVerify  bool
	}
)

// {TransportArgs + defaults} => http.Transport
func NewTransport(cargs TransportArgs) *http.Transport {
	var (
		defaultTransport = http.DefaultTransport.(*http.Transport)
		dialTimeout      = cos.NonZero(cargs.DialTimeout, DfltDialupTimeout)
	)
	dialer := &net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: DfltKeepaliveTCP,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   defaultTransport.TLSHandshakeTimeout,
		ExpectContinueTimeout: defaultTransport.ExpectContinueTimeout,
	}
	transport.IdleConnTimeout = cos.NonZero(cargs.IdleConnTimeout, DefaultIdleConnTimeout)
	transport.MaxIdleConnsPerHost = cos.NonZero(cargs.IdleConnsPerHost, DefaultMaxIdleConnsPerHost)
	transport.MaxIdleConns = cos.NonZero(cargs.MaxIdleConns, DefaultMaxIdleConns)
	if cargs.UseHTTPProxyEnv {
		transport.Proxy = defaultTransport.Proxy
	}
	return transport
}

func NewTLS(sargs TLSArgs) (tlsConf *tls.Config, err error) {
	var pool *x509.CertPool
	if sargs.ClientCA != "" {
		cert, err := os.ReadFile(sargs.ClientCA)
		if err != nil {
			return nil, err
		}
		pool, err = x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("client tls: failed to load system cert pool, err: %w", err)
		}
		if ok := pool.AppendCertsFromPEM(cert); !ok {
			return nil, fmt.Errorf("client tls: failed to append CA certs from PEM: %q", sargs.ClientCA)
		}
	}
	tlsConf = &tls.Config{RootCAs: pool, InsecureSkipVerify: sargs.SkipVerify}

	if sargs.Certificate == "" && sargs.Key == "" {
		return tlsConf, nil
	}
	var (
		cert tls.Certificate
		hint string
	)
	if cert, err = tls.LoadX509KeyPair(sargs.Certificate, sargs.Key); err == nil {
		tlsConf.Certificates = []tls.Certificate{cert}
		return tlsConf, nil
	}
	if os.IsNotExist(err) {
		hint = "\n(hint: check the two filenames for existence/accessibility)"
	}
	return nil, fmt.Errorf("client tls: failed to load public/private key pair: (%q, %q)%s", sargs.Certificate, sargs.Key, hint)
}

// NOTE: `NewTransport` (above) fills-in certain defaults
func NewClient(cargs TransportArgs) *http.Client {
	return &http.Client{Transport: NewTransport(cargs), Timeout: cargs.Timeout}
}

// https client (ditto)
func NewClientTLS(cargs TransportArgs, sargs TLSArgs) (*http.Client, error) {
	transport := NewTransport(cargs)
	tlsConfig, err := NewTLS(sargs)
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = tlsConfig
	return &http.Client{Transport: transport, Timeout: cargs.Timeout}, nil
}
