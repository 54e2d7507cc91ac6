// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn/cos"
	"github.com/sellerkit/mws/cmn/debug"
)

var ErrNoEndpoint = errors.New("endpoint URL is empty")

// AssembleArgs is everything a signed request is derived from. The request
// body (feeds) is attached separately and is never part of the signature.
type AssembleArgs struct {
	Creds   *Credentials
	Section *apc.Section
	Params  cos.StrKVs // operation params; empty keys and empty values are dropped
	Action  string
	Method  string    // http.MethodGet when empty
	Base    string    // scheme://host[:port]
	Now     time.Time // zero means time.Now
}

// BuildParams merges operation parameters with the authentication block.
// The auth block goes in first; caller params are merged last-write-wins,
// so a caller-supplied Action, Version, or Timestamp takes precedence.
// Empty keys and empty values are dropped - absent and empty are the same
// thing on the wire.
func BuildParams(a *AssembleArgs) (cos.StrKVs, error) {
	if err := a.Creds.Validate(); err != nil {
		return nil, err
	}
	debug.Assert(a.Section != nil && a.Action != "")
	now := a.Now
	if cos.IsTimeZero(now) {
		now = time.Now()
	}
	params := cos.NewStrKVs(len(a.Params) + 8)
	params[apc.ParamAction] = a.Action
	params[apc.ParamAccessKeyID] = a.Creds.AccessKeyID
	params[a.Creds.AccountKey(a.Section)] = a.Creds.SellerID
	params[apc.ParamSignatureVersion] = apc.SignatureV2
	params[apc.ParamSignatureMethod] = apc.SignatureHmacSHA256
	params[apc.ParamTimestamp] = cos.FormatMWSTime(now)
	params[apc.ParamVersion] = a.Section.Version
	if a.Creds.AuthToken != "" {
		params[apc.ParamAuthToken] = a.Creds.AuthToken
	}
	for k, v := range a.Params {
		if k == "" || v == "" {
			continue
		}
		params[k] = v
	}
	return params, nil
}

// EnumerateParam flattens a list into numbered members:
// ("MarketplaceIdList.Id", {a, b}) adds MarketplaceIdList.Id.1=a and
// MarketplaceIdList.Id.2=b. Numbering is 1-based and stays contiguous
// when empty values get skipped. A trailing dot in prefix is tolerated.
func EnumerateParam(params cos.StrKVs, prefix string, values []string) {
	prefix = strings.TrimSuffix(prefix, ".")
	i := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		i++
		params[prefix+"."+strconv.Itoa(i)] = v
	}
}

// CanonicalQuery renders params deterministically: keys in byte order,
// values percent-encoded per RFC 3986, pairs joined with '&'. Keys go out
// raw - parameter names are wire-safe by construction (ASCII letters,
// digits, dots).
func CanonicalQuery(params cos.StrKVs) string {
	if len(params) == 0 {
		return ""
	}
	var (
		keys = params.SortedKeys()
		sb   strings.Builder
		n    = len(params)
	)
	for k, v := range params {
		n += len(k) + 1 + len(v)
	}
	sb.Grow(n)
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(cos.EscapeParam(params[k]))
	}
	return sb.String()
}

// SignV2 computes the SignatureVersion 2 signature: HMAC-SHA256, keyed by
// the secret, over the four-line payload
//
//	METHOD \n host \n path \n query
//
// base64-encoded. Host is the endpoint lowercased with the scheme stripped;
// an explicit port stays in.
func SignV2(method, base, path, query, secretKey string) string {
	host := SignableHost(base)
	if path == "" {
		path = "/"
	}
	var sb strings.Builder
	sb.Grow(len(method) + len(host) + len(path) + len(query) + 3)
	sb.WriteString(method)
	sb.WriteByte('\n')
	sb.WriteString(host)
	sb.WriteByte('\n')
	sb.WriteString(path)
	sb.WriteByte('\n')
	sb.WriteString(query)

	mac := hmac.New(sha256.New, cos.UnsafeB(secretKey))
	mac.Write(cos.UnsafeB(sb.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignableHost strips the scheme and any trailing slash, and lowercases
// what remains.
func SignableHost(base string) string {
	host := base
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	host = strings.TrimSuffix(host, "/")
	return strings.ToLower(host)
}

// Assemble builds the ready-to-send request: merged params, canonical query,
// signature computed over the exact query bytes and appended last (the
// Signature param itself is never signed).
func Assemble(a *AssembleArgs) (*HreqArgs, error) {
	if a.Base == "" {
		return nil, ErrNoEndpoint
	}
	params, err := BuildParams(a)
	if err != nil {
		return nil, err
	}
	method := a.Method
	if method == "" {
		method = http.MethodGet
	}
	query := CanonicalQuery(params)
	sig := SignV2(method, a.Base, a.Section.Path, query, a.Creds.SecretKey)
	return &HreqArgs{
		Method:   method,
		Base:     a.Base,
		Path:     a.Section.Path,
		RawQuery: query + "&" + apc.ParamSignature + "=" + cos.EscapeParam(sig),
	}, nil
}
