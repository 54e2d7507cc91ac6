// Package env contains environment variables
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package env

// use MWS_ENDPOINT to override the marketplace-derived endpoint
// (explicit endpoint always takes precedence)

// ditto sourcing the keypair from AWS shared config via "MWS_AWS_PROFILE"
// (the default profile is called [default])

var (
	MWS = struct {
		Endpoint      string
		Marketplace   string
		AccessKeyID   string
		SecretKey     string
		SellerID      string
		AuthToken     string
		AccountType   string
		UserAgent     string
		AWSProfile    string
		Timeout       string
		SkipVerifyCrt string
	}{
		Endpoint:      "MWS_ENDPOINT",
		Marketplace:   "MWS_MARKETPLACE",
		AccessKeyID:   "MWS_ACCESS_KEY_ID",
		SecretKey:     "MWS_SECRET_KEY",
		SellerID:      "MWS_SELLER_ID",
		AuthToken:     "MWS_AUTH_TOKEN",
		AccountType:   "MWS_ACCOUNT_TYPE",
		UserAgent:     "MWS_USER_AGENT",
		AWSProfile:    "MWS_AWS_PROFILE",
		Timeout:       "MWS_TIMEOUT",
		SkipVerifyCrt: "MWS_SKIP_VERIFY_CRT",
	}
)
