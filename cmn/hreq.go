// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/sellerkit/mws/cmn/cos"
	"github.com/sellerkit/mws/cmn/debug"
)

// HreqArgs is a fully assembled request waiting to be executed. RawQuery is
// carried as the exact signed string: re-encoding through url.Values would
// re-sort and re-escape it, and the signature covers every byte.
type HreqArgs struct {
	Header   http.Header
	Method   string
	Base     string // base URL, e.g. https://mws.amazonservices.com
	Path     string // path, e.g. /Orders/2013-09-01
	RawQuery string // canonical query with the trailing Signature param
	Body     []byte
}

func (u *HreqArgs) URL() string {
	debug.Assert(u.Base != "") // enforced when assembling
	url := cos.JoinPath(u.Base, u.Path)
	if u.RawQuery != "" {
		return url + "?" + u.RawQuery
	}
	return url
}

// Req returns a context-less request - see ReqWithCtx.
func (u *HreqArgs) Req() (*http.Request, error) {
	req, err := http.NewRequest(u.Method, u.URL(), http.NoBody)
	if err != nil {
		return nil, err
	}
	if len(u.Body) > 0 {
		reader := bytes.NewReader(u.Body)
		req.Body = io.NopCloser(reader)
		req.ContentLength = int64(len(u.Body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(u.Body)), nil
		}
	}
	if u.Header != nil {
		copyHeaders(req.Header, u.Header)
	}
	return req, nil
}

func (u *HreqArgs) ReqWithCtx(ctx context.Context) (*http.Request, error) {
	req, err := u.Req()
	if err != nil {
		return nil, err
	}
	return req.WithContext(ctx), nil
}

func copyHeaders(dst, src http.Header) {
	for k, values := range src {
		for _, v := range values {
			dst.Add(k, v)
		}
	}
}
