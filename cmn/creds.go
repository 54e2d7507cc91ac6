// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"github.com/sellerkit/mws/api/apc"
)

// Credentials identify the caller on every signed request. The zero value is
// not usable - see Validate.
type Credentials struct {
	AccessKeyID string
	SecretKey   string
	SellerID    string
	AuthToken   string // optional, set when acting on a delegated account
	AccountType string // query key for SellerID; empty means apc.AccountSeller
}

// AccountKey resolves the query key the seller identifier goes under:
// section override first, then the credentials' own, then the default.
func (c *Credentials) AccountKey(section *apc.Section) string {
	if section != nil && section.Account != "" {
		return section.Account
	}
	if c.AccountType != "" {
		return c.AccountType
	}
	return apc.AccountSeller
}

func (c *Credentials) Validate() error {
	if c == nil {
		return &ErrMissingCred{"credentials"}
	}
	if c.AccessKeyID == "" {
		return &ErrMissingCred{"access key ID"}
	}
	if c.SecretKey == "" {
		return &ErrMissingCred{"secret key"}
	}
	if c.SellerID == "" {
		return &ErrMissingCred{"seller ID"}
	}
	return nil
}
