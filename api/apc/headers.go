// Package apc: control constants and wire-level parameter names
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// standard
const (
	HdrContentMD5  = "Content-MD5"
	HdrContentType = "Content-Type"
	HdrUserAgent   = "User-Agent"
)

// service response headers
const (
	HdrRequestID       = "x-mws-request-id"
	HdrTimestamp       = "x-mws-timestamp"
	HdrQuotaMax        = "x-mws-quota-max"
	HdrQuotaRemaining  = "x-mws-quota-remaining"
	HdrQuotaResetsOn   = "x-mws-quota-resetsOn"
	HdrResponseContext = "x-mws-response-context"
)

// content types
const (
	ContentXML = "text/xml"
	ContentTSV = "text/tab-separated-values" // flat-file feeds
)
