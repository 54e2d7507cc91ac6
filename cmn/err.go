// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sellerkit/mws/api/apc"
)

const errSnippetLen = 120

type (
	// ErrResponse is the service-side error document that accompanies any
	// 4xx/5xx status. Wire form (XML):
	//
	//	<ErrorResponse>
	//	  <Error><Type/><Code/><Message/><Detail/></Error>
	//	  <RequestID/>
	//	</ErrorResponse>
	ErrResponse struct {
		Type      string
		Code      string
		Message   string
		Detail    string
		RequestID string
		Method    string
		URLPath   string
		Status    int
	}

	// ErrHTTP is the fallback when the error body is not a parsable
	// ErrorResponse document (proxies, load balancers, HTML error pages).
	ErrHTTP struct {
		Method  string
		URLPath string
		Snippet string // leading bytes of the body
		Status  int
	}

	// ErrContentMD5: the received body does not hash to the Content-MD5
	// the service attached to it.
	ErrContentMD5 struct {
		Expected string
		Computed string
	}

	ErrMissingCred struct {
		What string
	}
)

// wire shape; accepts both historic spellings of the request-ID element
type xmlErrResponse struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Err     struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
		Detail  string `xml:"Detail"`
	} `xml:"Error"`
	RequestID  string `xml:"RequestID"`
	RequestID2 string `xml:"RequestId"`
}

// NewErrResponse parses the error body; falls back to ErrHTTP when the body
// is not an ErrorResponse document.
func NewErrResponse(status int, body []byte, method, urlPath string) error {
	var wire xmlErrResponse
	if err := xml.Unmarshal(body, &wire); err != nil || wire.Err.Code == "" {
		return &ErrHTTP{Method: method, URLPath: urlPath, Snippet: errSnippet(body), Status: status}
	}
	reqID := wire.RequestID
	if reqID == "" {
		reqID = wire.RequestID2
	}
	return &ErrResponse{
		Type:      wire.Err.Type,
		Code:      wire.Err.Code,
		Message:   wire.Err.Message,
		Detail:    wire.Err.Detail,
		RequestID: reqID,
		Method:    method,
		URLPath:   urlPath,
		Status:    status,
	}
}

func errSnippet(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if len(s) > errSnippetLen {
		s = s[:errSnippetLen] + "..."
	}
	return s
}

/////////////////
// ErrResponse //
/////////////////

func (e *ErrResponse) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Code)
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	fmt.Fprintf(&sb, " (%s %s, status=%d", e.Method, e.URLPath, e.Status)
	if e.RequestID != "" {
		sb.WriteString(", request-id=")
		sb.WriteString(e.RequestID)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Throttled: the service told us to back off.
func (e *ErrResponse) Throttled() bool {
	return e.Code == apc.ErrCodeThrottled || e.Code == apc.ErrCodeQuotaExceeded ||
		e.Status == http.StatusServiceUnavailable
}

func AsErrResponse(err error) *ErrResponse {
	var e *ErrResponse
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsErrResponse(err error) bool { return AsErrResponse(err) != nil }

// IsStatusThrottled covers both the parsed and the fallback flavor.
func IsStatusThrottled(err error) bool {
	if e := AsErrResponse(err); e != nil {
		return e.Throttled()
	}
	var h *ErrHTTP
	return errors.As(err, &h) && h.Status == http.StatusServiceUnavailable
}

/////////////
// ErrHTTP //
/////////////

func (e *ErrHTTP) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%s %s failed: %s", e.Method, e.URLPath, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s failed: %s (%s)", e.Method, e.URLPath, http.StatusText(e.Status), e.Snippet)
}

///////////////////
// ErrContentMD5 //
///////////////////

func (e *ErrContentMD5) Error() string {
	return fmt.Sprintf("content MD5 mismatch: expected %s, computed %s", e.Expected, e.Computed)
}

func IsErrContentMD5(err error) bool {
	var e *ErrContentMD5
	return errors.As(err, &e)
}

////////////////////
// ErrMissingCred //
////////////////////

func (e *ErrMissingCred) Error() string { return "missing " + e.What }
