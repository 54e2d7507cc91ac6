// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"github.com/sellerkit/mws/api/apc"
)

// ListMarketplaceParticipations returns the marketplaces the seller account
// can trade in, together with the account's participation in each.
func ListMarketplaceParticipations(bp BaseParams) (*Response, error) {
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Sellers
		reqParams.Action = apc.ActListMarketplaces
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func ListMarketplaceParticipationsByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Sellers, apc.ActListMarketplacesByToken, token)
}
