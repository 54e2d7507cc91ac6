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

// ListOrdersArgs filters ListOrders. The service requires exactly one of
// CreatedAfter and LastUpdatedAfter; it rejects requests carrying both.
type ListOrdersArgs struct {
	CreatedAfter        time.Time
	CreatedBefore       time.Time
	LastUpdatedAfter    time.Time
	LastUpdatedBefore   time.Time
	MarketplaceIDs      []string
	OrderStatuses       []string
	FulfillmentChannels []string // AFN, MFN
	PaymentMethods      []string
	BuyerEmail          string
	SellerOrderID       string
	MaxResultsPerPage   int
}

func ListOrders(bp BaseParams, args *ListOrdersArgs) (*Response, error) {
	if args == nil {
		args = &ListOrdersArgs{}
	}
	q := cos.NewStrKVs(8)
	setTime(q, "CreatedAfter", args.CreatedAfter)
	setTime(q, "CreatedBefore", args.CreatedBefore)
	setTime(q, "LastUpdatedAfter", args.LastUpdatedAfter)
	setTime(q, "LastUpdatedBefore", args.LastUpdatedBefore)
	cmn.EnumerateParam(q, "MarketplaceId.Id", args.MarketplaceIDs)
	cmn.EnumerateParam(q, "OrderStatus.Status", args.OrderStatuses)
	cmn.EnumerateParam(q, "FulfillmentChannel.Channel", args.FulfillmentChannels)
	cmn.EnumerateParam(q, "PaymentMethod.Method", args.PaymentMethods)
	q["BuyerEmail"] = args.BuyerEmail
	q["SellerOrderId"] = args.SellerOrderID
	setInt(q, "MaxResultsPerPage", args.MaxResultsPerPage)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Orders
		reqParams.Action = apc.ActListOrders
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func ListOrdersByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Orders, apc.ActListOrdersByToken, token)
}

// GetOrder fetches up to 50 orders by their order IDs.
func GetOrder(bp BaseParams, orderIDs []string) (*Response, error) {
	q := cos.NewStrKVs(len(orderIDs))
	cmn.EnumerateParam(q, "AmazonOrderId.Id", orderIDs)
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Orders
		reqParams.Action = apc.ActGetOrder
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func ListOrderItems(bp BaseParams, orderID string) (*Response, error) {
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Orders
		reqParams.Action = apc.ActListOrderItems
		reqParams.Query = cos.StrKVs{"AmazonOrderId": orderID}
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func ListOrderItemsByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Orders, apc.ActListOrderItemsByToken, token)
}
