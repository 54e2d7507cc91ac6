// Package tmws provides a fake MWS endpoint for unit tests: it re-derives
// the SignatureVersion 2 signature of every received request from the
// shared secret and serves canned XML documents keyed by Action.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tmws

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn"
	"github.com/sellerkit/mws/cmn/cos"
	"github.com/sellerkit/mws/tools/trand"
)

type (
	// Response is one canned reply, registered per Action.
	Response struct {
		Hdr    http.Header // extra headers, set after the defaults
		Body   string
		Status int // http.StatusOK when zero
	}

	// Received is one recorded request with its signature already checked.
	Received struct {
		Header http.Header
		Params cos.StrKVs // decoded query, Signature excluded
		Method string
		Path   string
		Body   []byte
		SigOK  bool
	}

	Server struct {
		*httptest.Server
		creds cmn.Credentials

		mu       sync.Mutex
		canned   map[string]Response
		received []Received
	}
)

func New(creds cmn.Credentials) *Server {
	srv := &Server{creds: creds, canned: make(map[string]Response, 4)}
	srv.Server = httptest.NewServer(srv)
	return srv
}

// Handle registers the canned reply for one action; unregistered actions
// get a minimal OKBody document.
func (srv *Server) Handle(action string, resp Response) {
	srv.mu.Lock()
	srv.canned[action] = resp
	srv.mu.Unlock()
}

// Throttle makes the action answer 503 RequestThrottled.
func (srv *Server) Throttle(action string) {
	srv.Handle(action, Response{
		Status: http.StatusServiceUnavailable,
		Body:   ErrorBody(apc.ErrCodeThrottled, "Request is throttled"),
	})
}

func (srv *Server) Received() []Received {
	srv.mu.Lock()
	out := make([]Received, len(srv.received))
	copy(out, srv.received)
	srv.mu.Unlock()
	return out
}

func (srv *Server) Last() *Received {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if len(srv.received) == 0 {
		return nil
	}
	return &srv.received[len(srv.received)-1]
}

func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	params, sigOK := srv.check(r)
	action := params[apc.ParamAction]

	srv.mu.Lock()
	srv.received = append(srv.received, Received{
		Header: r.Header.Clone(),
		Params: params,
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   body,
		SigOK:  sigOK,
	})
	resp, ok := srv.canned[action]
	srv.mu.Unlock()

	h := w.Header()
	h.Set(apc.HdrRequestID, trand.String(16))
	h.Set(apc.HdrResponseContext, trand.String(24))
	h.Set(apc.HdrTimestamp, cos.FormatMWSTime(time.Now()))
	h.Set(apc.HdrContentType, apc.ContentXML)

	if !sigOK {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, ErrorBody(apc.ErrCodeSignatureDoesNotMatch,
			"The request signature we calculated does not match the signature you provided."))
		return
	}
	if !ok {
		resp = Response{Body: OKBody(action, nsOf(r.URL.Path))}
	}
	for k, vs := range resp.Hdr {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	w.WriteHeader(resp.Status)
	io.WriteString(w, resp.Body)
}

// check re-derives the signature over the received query. The canonical
// form is order independent, so decoding and re-sorting round-trips.
func (srv *Server) check(r *http.Request) (cos.StrKVs, bool) {
	q := r.URL.Query()
	sig := q.Get(apc.ParamSignature)
	q.Del(apc.ParamSignature)
	params := cos.NewStrKVs(len(q))
	for k := range q {
		params[k] = q.Get(k)
	}
	expected := cmn.SignV2(r.Method, r.Host, r.URL.Path, cmn.CanonicalQuery(params), srv.creds.SecretKey)
	return params, sig != "" && sig == expected
}

// OKBody renders the minimal well-formed response document for the action,
// in the section namespace when one is given.
func OKBody(action, ns string) string {
	var xmlns string
	if ns != "" {
		xmlns = fmt.Sprintf(" xmlns=%q", ns)
	}
	return fmt.Sprintf("<%sResponse%s><%sResult/><ResponseMetadata><RequestId>%s</RequestId></ResponseMetadata></%sResponse>",
		action, xmlns, action, trand.String(12), action)
}

func nsOf(path string) string {
	for _, section := range apc.Sections() {
		if section.Path == path {
			return section.NS
		}
	}
	return ""
}

// ErrorBody renders the service's ErrorResponse document.
func ErrorBody(code, msg string) string {
	return fmt.Sprintf("<ErrorResponse><Error><Type>Sender</Type><Code>%s</Code><Message>%s</Message></Error><RequestID>%s</RequestID></ErrorResponse>",
		code, msg, trand.String(12))
}
