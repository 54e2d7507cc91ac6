// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sellerkit/mws/api"
	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn"
	"github.com/sellerkit/mws/stats"
	"github.com/sellerkit/mws/tools/tassert"
	"github.com/sellerkit/mws/tools/tmws"
)

var testCreds = cmn.Credentials{
	AccessKeyID: "AKIATEST",
	SecretKey:   "t0p-s3cret",
	SellerID:    "A1TESTSELLER",
}

func newBP(t *testing.T, srv *tmws.Server) api.BaseParams {
	conf := &cmn.ClientConf{
		Endpoint:    srv.URL,
		AccessKeyID: testCreds.AccessKeyID,
		SecretKey:   testCreds.SecretKey,
		SellerID:    testCreds.SellerID,
	}
	bp, err := api.NewBaseParams(conf)
	tassert.CheckFatal(t, err)
	return bp
}

func TestSignedRoundTrip(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	resp, err := api.ListMarketplaceParticipations(newBP(t, srv))
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, resp.Status == http.StatusOK, "status %d", resp.Status)
	tassert.Errorf(t, resp.RequestID() != "", "response carries no request ID header")
	tassert.Errorf(t, resp.ResponseContext() != "", "response carries no response context header")
	tassert.Errorf(t, strings.Contains(string(resp.Body), apc.Sellers.NS), "body lacks the section namespace")

	rec := srv.Last()
	tassert.Fatalf(t, rec != nil, "nothing received")
	tassert.Fatalf(t, rec.SigOK, "signature did not verify on the receiving side")
	tassert.Errorf(t, rec.Method == http.MethodGet, "method %s", rec.Method)
	tassert.Errorf(t, rec.Path == apc.Sellers.Path, "path %s", rec.Path)
	tassert.Errorf(t, rec.Params[apc.ParamAction] == apc.ActListMarketplaces, "action %q", rec.Params[apc.ParamAction])
	tassert.Errorf(t, rec.Params[apc.ParamAccessKeyID] == testCreds.AccessKeyID, "access key %q", rec.Params[apc.ParamAccessKeyID])
	tassert.Errorf(t, rec.Params[apc.AccountSeller] == testCreds.SellerID, "seller %q", rec.Params[apc.AccountSeller])
	tassert.Errorf(t, rec.Params[apc.ParamVersion] == apc.Sellers.Version, "version %q", rec.Params[apc.ParamVersion])

	ts, err := time.Parse("2006-01-02T15:04:05Z", rec.Params[apc.ParamTimestamp])
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, time.Since(ts) < time.Minute, "stale timestamp %v", ts)
}

// a client holding the wrong secret must be turned away
func TestSignatureRejected(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	conf := &cmn.ClientConf{
		Endpoint:    srv.URL,
		AccessKeyID: testCreds.AccessKeyID,
		SecretKey:   "wrong-secret",
		SellerID:    testCreds.SellerID,
	}
	bp, err := api.NewBaseParams(conf)
	tassert.CheckFatal(t, err)

	_, err = api.ListMarketplaceParticipations(bp)
	e := cmn.AsErrResponse(err)
	tassert.Fatalf(t, e != nil, "expected ErrResponse, got %v", err)
	tassert.Errorf(t, e.Code == apc.ErrCodeSignatureDoesNotMatch, "code %q", e.Code)
	tassert.Errorf(t, e.Status == http.StatusForbidden, "status %d", e.Status)
}

func TestUserAgent(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	_, err := api.ListMarketplaceParticipations(newBP(t, srv))
	tassert.CheckFatal(t, err)
	ua := srv.Last().Header.Get(apc.HdrUserAgent)
	tassert.Errorf(t, ua == cmn.DfltUserAgent, "default user agent, got %q", ua)

	bp := newBP(t, srv)
	bp.UA = "sellerd/2.3"
	_, err = api.GetOrder(bp, []string{"902-1845936-5435065"})
	tassert.CheckFatal(t, err)
	ua = srv.Last().Header.Get(apc.HdrUserAgent)
	tassert.Errorf(t, ua == "sellerd/2.3", "custom user agent, got %q", ua)
}

func TestErrResponseMapping(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()
	bp := newBP(t, srv)

	srv.Handle(apc.ActGetOrder, tmws.Response{
		Status: http.StatusBadRequest,
		Body:   tmws.ErrorBody(apc.ErrCodeInvalidParameterValue, "Value for parameter AmazonOrderId is not valid"),
	})
	_, err := api.GetOrder(bp, []string{"bogus"})
	e := cmn.AsErrResponse(err)
	tassert.Fatalf(t, e != nil, "expected ErrResponse, got %v", err)
	tassert.Errorf(t, e.Code == apc.ErrCodeInvalidParameterValue, "code %q", e.Code)
	tassert.Errorf(t, e.RequestID != "", "request ID not parsed")
	tassert.Errorf(t, !cmn.IsStatusThrottled(err), "a 400 is not a throttle")

	// a proxy page that is not an ErrorResponse document
	srv.Handle(apc.ActListOrders, tmws.Response{
		Status: http.StatusBadGateway,
		Body:   "<html><body>bad gateway</body></html>",
	})
	_, err = api.ListOrders(bp, nil)
	tassert.Fatalf(t, err != nil && !cmn.IsErrResponse(err), "expected the fallback error, got %v", err)
	tassert.Errorf(t, strings.Contains(err.Error(), "bad gateway"), "snippet lost: %v", err)
}

func TestThrottling(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	srv.Throttle(apc.ActListOrders)
	_, err := api.ListOrders(newBP(t, srv), &api.ListOrdersArgs{CreatedAfter: time.Now().Add(-time.Hour)})
	tassert.Fatalf(t, err != nil, "expected throttle error")
	tassert.Errorf(t, cmn.IsStatusThrottled(err), "throttle not detected: %v", err)
}

func TestResponseQuota(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	hdr := http.Header{}
	hdr.Set(apc.HdrQuotaMax, "200")
	hdr.Set(apc.HdrQuotaRemaining, "197")
	hdr.Set(apc.HdrQuotaResetsOn, "2026-08-24T12:00:00.000Z")
	srv.Handle(apc.ActListMarketplaces, tmws.Response{Hdr: hdr, Body: tmws.OKBody(apc.ActListMarketplaces, apc.Sellers.NS)})

	resp, err := api.ListMarketplaceParticipations(newBP(t, srv))
	tassert.CheckFatal(t, err)
	maxQ, remaining, resetsOn := resp.Quota()
	tassert.Errorf(t, maxQ == 200 && remaining == 197, "quota %d/%d", remaining, maxQ)
	tassert.Errorf(t, resetsOn.Equal(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)), "resets on %v", resetsOn)

	_, err = resp.Timestamp()
	tassert.CheckError(t, err)
}

func TestNextTokenContinuation(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	_, err := api.ListOrdersByNextToken(newBP(t, srv), "2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=")
	tassert.CheckFatal(t, err)
	rec := srv.Last()
	tassert.Fatalf(t, rec.SigOK, "continuation signature did not verify")
	tassert.Errorf(t, rec.Params[apc.ParamNextToken] == "2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=",
		"token %q", rec.Params[apc.ParamNextToken])
	tassert.Errorf(t, rec.Params[apc.ParamAction] == apc.ActListOrdersByToken, "action %q", rec.Params[apc.ParamAction])
}

func statusBody(status string) string {
	return "<GetServiceStatusResponse><GetServiceStatusResult><Status>" + status +
		"</Status><Timestamp>2026-01-02T03:04:05.678Z</Timestamp></GetServiceStatusResult></GetServiceStatusResponse>"
}

func TestServiceStatus(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	srv.Handle(apc.ActServiceStatus, tmws.Response{Body: statusBody(apc.ServiceGreen)})
	status, err := api.ServiceStatus(newBP(t, srv), apc.Orders)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, status == apc.ServiceGreen, "status %q", status)
}

func TestStatsTracking(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	reg := prometheus.NewPedanticRegistry()
	bp := newBP(t, srv)
	bp.Stats = stats.NewProm(reg)

	_, err := api.ListMarketplaceParticipations(bp)
	tassert.CheckFatal(t, err)
	srv.Throttle(apc.ActListOrders)
	_, err = api.ListOrders(bp, nil)
	tassert.Fatalf(t, err != nil, "expected throttle")

	families, err := reg.Gather()
	tassert.CheckFatal(t, err)
	sums := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			sums[mf.GetName()] += m.GetCounter().GetValue()
		}
	}
	tassert.Errorf(t, sums["mws_client_requests_total"] == 2, "requests %v", sums["mws_client_requests_total"])
	tassert.Errorf(t, sums["mws_client_errors_total"] == 1, "errors %v", sums["mws_client_errors_total"])
	tassert.Errorf(t, sums["mws_client_throttled_total"] == 1, "throttled %v", sums["mws_client_throttled_total"])
}

// all sections at once, concurrently
func TestServiceStatusAll(t *testing.T) {
	srv := tmws.New(testCreds)
	defer srv.Close()

	srv.Handle(apc.ActServiceStatus, tmws.Response{Body: statusBody(apc.ServiceGreenI)})
	statuses, err := api.ServiceStatusAll(newBP(t, srv))
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, len(statuses) == len(apc.Sections()), "got %d statuses", len(statuses))
	for _, section := range apc.Sections() {
		tassert.Errorf(t, statuses[section.Name] == apc.ServiceGreenI,
			"section %s: %q", section.Name, statuses[section.Name])
	}
	for _, rec := range srv.Received() {
		tassert.Fatalf(t, rec.SigOK, "unsigned request to %s", rec.Path)
	}
}
