// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/http"
	"time"

	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn"
	"github.com/sellerkit/mws/cmn/cos"
)

type (
	SubmitFeedArgs struct {
		Feed            []byte
		FeedType        string
		MarketplaceIDs  []string
		ContentType     string // apc.ContentXML when empty
		PurgeAndReplace *bool  // use sparingly - heavily throttled by the service
	}

	// FeedSubmissionFilter narrows the list/count/cancel operations;
	// the zero value selects everything.
	FeedSubmissionFilter struct {
		IDs      []string
		Types    []string
		Statuses []string // apc.StatusSubmitted et al.
		From     time.Time
		To       time.Time
		MaxCount int
	}
)

// SubmitFeed uploads a feed document. The feed body is POST-ed as-is and is
// not part of the signature; Content-MD5 of the body goes into the request
// header so the service can verify what it received.
func SubmitFeed(bp BaseParams, args *SubmitFeedArgs) (*Response, error) {
	q := cos.NewStrKVs(4)
	q["FeedType"] = args.FeedType
	cmn.EnumerateParam(q, "MarketplaceIdList.Id", args.MarketplaceIDs)
	setBool(q, "PurgeAndReplace", args.PurgeAndReplace)

	ct := args.ContentType
	if ct == "" {
		ct = apc.ContentXML
	}
	hdr := make(http.Header, 2)
	hdr.Set(apc.HdrContentType, ct)
	hdr.Set(apc.HdrContentMD5, cos.ChecksumB64(args.Feed))

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Feeds
		reqParams.Action = apc.ActSubmitFeed
		reqParams.Method = http.MethodPost
		reqParams.Query = q
		reqParams.Header = hdr
		reqParams.Body = args.Feed
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetFeedSubmissionList(bp BaseParams, filter *FeedSubmissionFilter) (*Response, error) {
	if filter == nil {
		filter = &FeedSubmissionFilter{}
	}
	q := cos.NewStrKVs(8)
	cmn.EnumerateParam(q, "FeedSubmissionIdList.Id", filter.IDs)
	cmn.EnumerateParam(q, "FeedTypeList.Type", filter.Types)
	cmn.EnumerateParam(q, "FeedProcessingStatusList.Status", filter.Statuses)
	setTime(q, "SubmittedFromDate", filter.From)
	setTime(q, "SubmittedToDate", filter.To)
	setInt(q, "MaxCount", filter.MaxCount)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Feeds
		reqParams.Action = apc.ActGetFeedSubmissionList
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetFeedSubmissionListByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Feeds, apc.ActGetFeedSubmissionsByToken, token)
}

func GetFeedSubmissionCount(bp BaseParams, filter *FeedSubmissionFilter) (*Response, error) {
	if filter == nil {
		filter = &FeedSubmissionFilter{}
	}
	q := cos.NewStrKVs(4)
	cmn.EnumerateParam(q, "FeedTypeList.Type", filter.Types)
	cmn.EnumerateParam(q, "FeedProcessingStatusList.Status", filter.Statuses)
	setTime(q, "SubmittedFromDate", filter.From)
	setTime(q, "SubmittedToDate", filter.To)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Feeds
		reqParams.Action = apc.ActGetFeedSubmissionCount
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// CancelFeedSubmissions cancels the selected submissions that have not
// started processing yet (IDs take precedence over the other filters).
func CancelFeedSubmissions(bp BaseParams, filter *FeedSubmissionFilter) (*Response, error) {
	if filter == nil {
		filter = &FeedSubmissionFilter{}
	}
	q := cos.NewStrKVs(4)
	cmn.EnumerateParam(q, "FeedSubmissionIdList.Id", filter.IDs)
	cmn.EnumerateParam(q, "FeedTypeList.Type", filter.Types)
	setTime(q, "SubmittedFromDate", filter.From)
	setTime(q, "SubmittedToDate", filter.To)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Feeds
		reqParams.Action = apc.ActCancelFeedSubmissions
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// GetFeedSubmissionResult downloads the processing report for a submitted
// feed. The response body is verified against its Content-MD5 header.
func GetFeedSubmissionResult(bp BaseParams, feedSubmissionID string) (*Response, error) {
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Feeds
		reqParams.Action = apc.ActGetFeedSubmissionResult
		reqParams.Query = cos.StrKVs{"FeedSubmissionId": feedSubmissionID}
		reqParams.Validate = true
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}
