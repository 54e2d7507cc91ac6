// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"time"

	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn"
	"github.com/sellerkit/mws/cmn/cos"
)

// ListInventorySupplyArgs: either SKUs or QueryStartDateTime, not both
// (the service rejects requests carrying both).
type ListInventorySupplyArgs struct {
	SKUs               []string
	QueryStartDateTime time.Time // select SKUs whose supply changed since
	ResponseGroup      string    // "Basic" (service default) or "Detailed"
}

// ListInventorySupply reports availability of the seller's fulfillment
// network inventory.
func ListInventorySupply(bp BaseParams, args *ListInventorySupplyArgs) (*Response, error) {
	if args == nil {
		args = &ListInventorySupplyArgs{}
	}
	q := cos.NewStrKVs(4)
	cmn.EnumerateParam(q, "SellerSkus.member", args.SKUs)
	setTime(q, "QueryStartDateTime", args.QueryStartDateTime)
	q["ResponseGroup"] = args.ResponseGroup

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Inventory
		reqParams.Action = apc.ActListInventorySupply
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func ListInventorySupplyByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Inventory, apc.ActListInventorySupplyByToken, token)
}
