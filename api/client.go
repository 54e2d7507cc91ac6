// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints: signed request assembly plus the operations of the
// Sellers, Orders, Products, Feeds, Reports, and FulfillmentInventory
// sections.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn"
	"github.com/sellerkit/mws/cmn/cos"
	"github.com/sellerkit/mws/cmn/debug"
	"github.com/sellerkit/mws/stats"
)

type (
	// BaseParams is the immutable per-client state that every operation
	// takes as its first argument.
	BaseParams struct {
		Client *http.Client
		URL    string // endpoint, e.g. https://mws.amazonservices.com
		Creds  *cmn.Credentials
		UA     string
		Stats  stats.Tracker // optional
	}

	// ReqParams is used to construct a single signed request.
	// Do not use concurrently.
	ReqParams struct {
		BaseParams BaseParams
		Section    *apc.Section
		Action     string
		Method     string // http.MethodGet when empty
		Query      cos.StrKVs
		Header     http.Header
		Body       []byte

		// Determines if the response body must hash to the response
		// Content-MD5 header (when the service attaches one).
		Validate bool
	}

	// Response is the raw outcome of one operation. The body stays
	// unparsed except for error detection - see Unmarshal.
	Response struct {
		Header http.Header
		Body   []byte
		Status int
	}
)

// NewBaseParams constructs BaseParams from a completed (and validated)
// client config - see cmn.ClientConf.Complete.
func NewBaseParams(conf *cmn.ClientConf) (BaseParams, error) {
	var (
		client *http.Client
		err    error
		cargs  = cmn.TransportArgs{Timeout: conf.Timeout.D()}
	)
	if strings.HasPrefix(conf.Endpoint, "https") {
		client, err = cmn.NewClientTLS(cargs, cmn.TLSArgs{SkipVerify: conf.SkipVerifyCrt})
		if err != nil {
			return BaseParams{}, err
		}
	} else {
		client = cmn.NewClient(cargs)
	}
	ua := conf.UserAgent
	if ua == "" {
		ua = cmn.DfltUserAgent
	}
	return BaseParams{Client: client, URL: conf.Endpoint, Creds: conf.Credentials(), UA: ua}, nil
}

func newErrCreateHTTPRequest(err error) error {
	return fmt.Errorf("failed to create new HTTP request, err: %v", err)
}

///////////////
// ReqParams //
///////////////

var (
	reqParamPool sync.Pool
	reqParams0   ReqParams
)

func AllocRp() *ReqParams {
	if v := reqParamPool.Get(); v != nil {
		return v.(*ReqParams)
	}
	return &ReqParams{}
}

func FreeRp(reqParams *ReqParams) {
	*reqParams = reqParams0
	reqParamPool.Put(reqParams)
}

// assemble merges, encodes, and signs - see cmn.Assemble. The body (when
// present) rides along unsigned.
func (reqParams *ReqParams) assemble() (*cmn.HreqArgs, error) {
	args := cmn.AssembleArgs{
		Creds:   reqParams.BaseParams.Creds,
		Section: reqParams.Section,
		Params:  reqParams.Query,
		Action:  reqParams.Action,
		Method:  reqParams.Method,
		Base:    reqParams.BaseParams.URL,
	}
	hreq, err := cmn.Assemble(&args)
	if err != nil {
		return nil, err
	}
	hreq.Header = reqParams.Header
	hreq.Body = reqParams.Body
	return hreq, nil
}

// do executes one signed request; any response with status >= 400 comes
// back as an error (cmn.ErrResponse when the body parses as one).
func (reqParams *ReqParams) do() (*Response, error) {
	hreq, err := reqParams.assemble()
	if err != nil {
		return nil, err
	}
	req, err := hreq.Req()
	if err != nil {
		return nil, newErrCreateHTTPRequest(err)
	}
	bp := &reqParams.BaseParams
	if req.Header.Get(apc.HdrUserAgent) == "" {
		ua := bp.UA
		if ua == "" {
			ua = cmn.DfltUserAgent
		}
		req.Header.Set(apc.HdrUserAgent, ua)
	}
	var (
		started = time.Now()
		section = reqParams.Section.Name
	)
	if bp.Stats != nil {
		bp.Stats.IncRequest(section, reqParams.Action)
	}
	resp, err := bp.Client.Do(req) //nolint:bodyclose // closed below
	if err != nil {
		if bp.Stats != nil {
			bp.Stats.IncErr(section, reqParams.Action)
		}
		return nil, err
	}
	out, err := reqParams.readResp(resp)
	resp.Body.Close()
	if bp.Stats != nil {
		bp.Stats.AddLatency(section, reqParams.Action, time.Since(started))
		if err != nil {
			bp.Stats.IncErr(section, reqParams.Action)
			if cmn.IsStatusThrottled(err) {
				bp.Stats.IncThrottled(section, reqParams.Action)
			}
		}
	}
	return out, err
}

func (reqParams *ReqParams) readResp(resp *http.Response) (*Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, cmn.NewErrResponse(resp.StatusCode, body, resp.Request.Method, reqParams.Section.Path)
	}
	out := &Response{Header: resp.Header, Body: body, Status: resp.StatusCode}
	if reqParams.Validate {
		if err := out.validateMD5(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

//////////////
// Response //
//////////////

func (r *Response) RequestID() string { return r.Header.Get(apc.HdrRequestID) }

// ResponseContext is an opaque service-side tracing token - pass it along
// when opening a support case.
func (r *Response) ResponseContext() string { return r.Header.Get(apc.HdrResponseContext) }

func (r *Response) Timestamp() (time.Time, error) {
	return cos.ParseMWSTime(r.Header.Get(apc.HdrTimestamp))
}

// Quota reports the hourly request quota the service attached to the
// response; zero values when the headers are absent.
func (r *Response) Quota() (max, remaining int64, resetsOn time.Time) {
	max, _ = strconv.ParseInt(r.Header.Get(apc.HdrQuotaMax), 10, 64)
	remaining, _ = strconv.ParseInt(r.Header.Get(apc.HdrQuotaRemaining), 10, 64)
	resetsOn, _ = cos.ParseMWSTime(r.Header.Get(apc.HdrQuotaResetsOn))
	return
}

// Unmarshal decodes the XML body into v.
func (r *Response) Unmarshal(v any) error { return xml.Unmarshal(r.Body, v) }

func (r *Response) validateMD5() error {
	expected := r.Header.Get(apc.HdrContentMD5)
	if expected == "" {
		return nil
	}
	computed := cos.ChecksumB64(r.Body)
	if computed != expected {
		return &cmn.ErrContentMD5{Expected: expected, Computed: computed}
	}
	return nil
}

//
// optional-param setters (absent and empty are the same thing on the wire)
//

func setTime(q cos.StrKVs, key string, t time.Time) {
	if !cos.IsTimeZero(t) {
		q[key] = cos.FormatMWSTime(t)
	}
}

func setBool(q cos.StrKVs, key string, b *bool) {
	if b != nil {
		q[key] = strconv.FormatBool(*b)
	}
}

func setInt(q cos.StrKVs, key string, i int) {
	if i > 0 {
		q[key] = strconv.Itoa(i)
	}
}

// doNextToken: the shared shape of every *ByNextToken continuation.
func doNextToken(bp BaseParams, section *apc.Section, action, token string) (*Response, error) {
	debug.Assert(token != "")
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = section
		reqParams.Action = action
		reqParams.Query = cos.StrKVs{apc.ParamNextToken: token}
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}
