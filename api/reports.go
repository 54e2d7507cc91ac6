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

type (
	// ReportRequestFilter narrows GetReportRequestList/Count and
	// CancelReportRequests; the zero value selects everything.
	ReportRequestFilter struct {
		RequestIDs []string
		Types      []string
		Statuses   []string
		From       time.Time
		To         time.Time
		MaxCount   int
	}

	// ReportFilter narrows GetReportList/Count.
	ReportFilter struct {
		RequestIDs   []string
		Types        []string
		Acknowledged *bool
		From         time.Time
		To           time.Time
		MaxCount     int
	}
)

// RequestReport schedules report generation; poll GetReportRequestList for
// completion, then fetch via GetReport.
func RequestReport(bp BaseParams, reportType string, start, end time.Time, marketplaceIDs []string) (*Response, error) {
	q := cos.NewStrKVs(4)
	q["ReportType"] = reportType
	setTime(q, "StartDate", start)
	setTime(q, "EndDate", end)
	cmn.EnumerateParam(q, "MarketplaceIdList.Id", marketplaceIDs)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActRequestReport
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetReportRequestList(bp BaseParams, filter *ReportRequestFilter) (*Response, error) {
	if filter == nil {
		filter = &ReportRequestFilter{}
	}
	q := cos.NewStrKVs(8)
	cmn.EnumerateParam(q, "ReportRequestIdList.Id", filter.RequestIDs)
	cmn.EnumerateParam(q, "ReportTypeList.Type", filter.Types)
	cmn.EnumerateParam(q, "ReportProcessingStatusList.Status", filter.Statuses)
	setTime(q, "RequestedFromDate", filter.From)
	setTime(q, "RequestedToDate", filter.To)
	setInt(q, "MaxCount", filter.MaxCount)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReportRequestList
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetReportRequestListByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Reports, apc.ActGetReportRequestsByToken, token)
}

func GetReportRequestCount(bp BaseParams, filter *ReportRequestFilter) (*Response, error) {
	if filter == nil {
		filter = &ReportRequestFilter{}
	}
	q := cos.NewStrKVs(4)
	cmn.EnumerateParam(q, "ReportTypeList.Type", filter.Types)
	cmn.EnumerateParam(q, "ReportProcessingStatusList.Status", filter.Statuses)
	setTime(q, "RequestedFromDate", filter.From)
	setTime(q, "RequestedToDate", filter.To)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReportRequestCount
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func CancelReportRequests(bp BaseParams, filter *ReportRequestFilter) (*Response, error) {
	if filter == nil {
		filter = &ReportRequestFilter{}
	}
	q := cos.NewStrKVs(8)
	cmn.EnumerateParam(q, "ReportRequestIdList.Id", filter.RequestIDs)
	cmn.EnumerateParam(q, "ReportTypeList.Type", filter.Types)
	cmn.EnumerateParam(q, "ReportProcessingStatusList.Status", filter.Statuses)
	setTime(q, "RequestedFromDate", filter.From)
	setTime(q, "RequestedToDate", filter.To)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActCancelReportRequests
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetReportList(bp BaseParams, filter *ReportFilter) (*Response, error) {
	if filter == nil {
		filter = &ReportFilter{}
	}
	q := cos.NewStrKVs(8)
	cmn.EnumerateParam(q, "ReportRequestIdList.Id", filter.RequestIDs)
	cmn.EnumerateParam(q, "ReportTypeList.Type", filter.Types)
	setBool(q, "Acknowledged", filter.Acknowledged)
	setTime(q, "AvailableFromDate", filter.From)
	setTime(q, "AvailableToDate", filter.To)
	setInt(q, "MaxCount", filter.MaxCount)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReportList
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetReportListByNextToken(bp BaseParams, token string) (*Response, error) {
	return doNextToken(bp, apc.Reports, apc.ActGetReportsByToken, token)
}

func GetReportCount(bp BaseParams, filter *ReportFilter) (*Response, error) {
	if filter == nil {
		filter = &ReportFilter{}
	}
	q := cos.NewStrKVs(4)
	cmn.EnumerateParam(q, "ReportTypeList.Type", filter.Types)
	setBool(q, "Acknowledged", filter.Acknowledged)
	setTime(q, "AvailableFromDate", filter.From)
	setTime(q, "AvailableToDate", filter.To)

	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReportCount
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// GetReport downloads a generated report. The response body is verified
// against its Content-MD5 header - a mismatch means a truncated or corrupted
// transfer and the report must be fetched again.
func GetReport(bp BaseParams, reportID string) (*Response, error) {
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReport
		reqParams.Query = cos.StrKVs{"ReportId": reportID}
		reqParams.Validate = true
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetReportScheduleList(bp BaseParams, types []string) (*Response, error) {
	q := cos.NewStrKVs(len(types))
	cmn.EnumerateParam(q, "ReportTypeList.Type", types)
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReportScheduleList
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

func GetReportScheduleCount(bp BaseParams, types []string) (*Response, error) {
	q := cos.NewStrKVs(len(types))
	cmn.EnumerateParam(q, "ReportTypeList.Type", types)
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActGetReportScheduleCount
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// ManageReportSchedule creates, changes, or drops the recurring schedule of
// one report type; schedule takes the service's interval enums ("_30_DAYS_",
// "_NEVER_", ...), scheduleDate the optional first run.
func ManageReportSchedule(bp BaseParams, reportType, schedule string, scheduleDate time.Time) (*Response, error) {
	q := cos.NewStrKVs(4)
	q["ReportType"] = reportType
	q["Schedule"] = schedule
	setTime(q, "ScheduleDate", scheduleDate)
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActManageReportSchedule
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// UpdateReportAcknowledgements marks reports acknowledged (or not, when
// acknowledged is explicitly false) so that GetReportList can filter them.
func UpdateReportAcknowledgements(bp BaseParams, reportIDs []string, acknowledged *bool) (*Response, error) {
	q := cos.NewStrKVs(len(reportIDs) + 1)
	cmn.EnumerateParam(q, "ReportIdList.Id", reportIDs)
	setBool(q, "Acknowledged", acknowledged)
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Reports
		reqParams.Action = apc.ActUpdateReportAcknowledge
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}
