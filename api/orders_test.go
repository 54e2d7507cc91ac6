// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"testing"
	"time"

	"github.com/sellerkit/mws/api"
	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/tools/tassert"
	"github.com/sellerkit/mws/tools/tmws"
)

func TestListOrdersParams(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	_, err := api.ListOrders(newBP(t, srv), &api.ListOrdersArgs{
		CreatedAfter:        time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CreatedBefore:       time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		MarketplaceIDs:      []string{"ATVPDKIKX0DER", "A1PA6795UKMFR9"},
		OrderStatuses:       []string{"Unshipped", "PartiallyShipped"},
		FulfillmentChannels: []string{"AFN"},
		BuyerEmail:          "buyer@example.com",
		MaxResultsPerPage:   50,
	})
	tassert.CheckFatal(t, err)

	rec := srv.Last()
	tassert.Fatalf(t, rec.SigOK, "signature did not verify")
	expected := []struct{ k, v string }{
		{apc.ParamAction, apc.ActListOrders},
		{"CreatedAfter", "2026-07-01T00:00:00Z"},
		{"CreatedBefore", "2026-08-01T12:30:00Z"},
		{"MarketplaceId.Id.1", "ATVPDKIKX0DER"},
		{"MarketplaceId.Id.2", "A1PA6795UKMFR9"},
		{"OrderStatus.Status.1", "Unshipped"},
		{"OrderStatus.Status.2", "PartiallyShipped"},
		{"FulfillmentChannel.Channel.1", "AFN"},
		{"BuyerEmail", "buyer@example.com"},
		{"MaxResultsPerPage", "50"},
	}
	for _, kv := range expected {
		tassert.Errorf(t, rec.Params[kv.k] == kv.v, "param %s = %q, expected %q", kv.k, rec.Params[kv.k], kv.v)
	}
	// zero times and empty lists stay off the wire
	for _, absent := range []string{"LastUpdatedAfter", "LastUpdatedBefore", "PaymentMethod.Method.1", "SellerOrderId"} {
		_, ok := rec.Params[absent]
		tassert.Errorf(t, !ok, "param %s must be absent", absent)
	}
}

func TestGetOrderParams(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	_, err := api.GetOrder(newBP(t, srv), []string{"902-1845936-5435065", "058-1233752-8214740"})
	tassert.CheckFatal(t, err)

	rec := srv.Last()
	tassert.Fatalf(t, rec.SigOK, "signature did not verify")
	tassert.Errorf(t, rec.Params[apc.ParamAction] == apc.ActGetOrder, "action %q", rec.Params[apc.ParamAction])
	tassert.Errorf(t, rec.Params["AmazonOrderId.Id.1"] == "902-1845936-5435065", "first order ID %q", rec.Params["AmazonOrderId.Id.1"])
	tassert.Errorf(t, rec.Params["AmazonOrderId.Id.2"] == "058-1233752-8214740", "second order ID %q", rec.Params["AmazonOrderId.Id.2"])
}

func TestListOrderItemsParams(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	_, err := api.ListOrderItems(newBP(t, srv), "902-1845936-5435065")
	tassert.CheckFatal(t, err)

	rec := srv.Last()
	tassert.Fatalf(t, rec.SigOK, "signature did not verify")
	tassert.Errorf(t, rec.Params["AmazonOrderId"] == "902-1845936-5435065", "order ID %q", rec.Params["AmazonOrderId"])
	tassert.Errorf(t, rec.Path == apc.Orders.Path, "path %s", rec.Path)
}
