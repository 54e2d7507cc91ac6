// Package apc: control constants and wire-level parameter names
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import (
	"fmt"
	"strings"
)

// Marketplace binds a country to its service endpoint and marketplace ID.
// Note that several countries share one regional endpoint.
type Marketplace struct {
	Country  string // ISO 3166-1 alpha-2
	Endpoint string
	ID       string
}

var Marketplaces = map[string]Marketplace{
	"AE": {"AE", "https://mws.amazonservices.ae", "A2VIGQ35RCS4UG"},
	"AU": {"AU", "https://mws.amazonservices.com.au", "A39IBJ37TRP1C6"},
	"BR": {"BR", "https://mws.amazonservices.com", "A2Q3Y263D00KWC"},
	"CA": {"CA", "https://mws.amazonservices.ca", "A2EUQ1WTGCTBG2"},
	"CN": {"CN", "https://mws.amazonservices.com.cn", "AAHKV2X7AFYLW"},
	"DE": {"DE", "https://mws-eu.amazonservices.com", "A1PA6795UKMFR9"},
	"ES": {"ES", "https://mws-eu.amazonservices.com", "A1RKKUPIHCS9HS"},
	"FR": {"FR", "https://mws-eu.amazonservices.com", "A13V1IB3VIYZZH"},
	"IN": {"IN", "https://mws.amazonservices.in", "A21TJRUUN4KGV"},
	"IT": {"IT", "https://mws-eu.amazonservices.com", "APJ6JRA9NG5V4"},
	"JP": {"JP", "https://mws.amazonservices.jp", "A1VC38T7YXB528"},
	"MX": {"MX", "https://mws.amazonservices.com.mx", "A1AM78C64UM0Y8"},
	"NL": {"NL", "https://mws-eu.amazonservices.com", "A1805IZSGTT6HS"},
	"UK": {"UK", "https://mws-eu.amazonservices.com", "A1F83G8C2ARO7P"},
	"US": {"US", "https://mws.amazonservices.com", "ATVPDKIKX0DER"},
}

// LookupMarketplace resolves a country code (case-insensitive).
func LookupMarketplace(country string) (Marketplace, error) {
	m, ok := Marketplaces[strings.ToUpper(country)]
	if !ok {
		return Marketplace{}, fmt.Errorf("unknown marketplace country code %q", country)
	}
	return m, nil
}
