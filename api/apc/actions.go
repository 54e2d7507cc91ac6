// Package apc: control constants and wire-level parameter names
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// Action values, by section. GetServiceStatus is accepted by every section.
const ActServiceStatus = "GetServiceStatus"

// Sellers
const (
	ActListMarketplaces        = "ListMarketplaceParticipations"
	ActListMarketplacesByToken = "ListMarketplaceParticipationsByNextToken"
)

// Orders
const (
	ActListOrders            = "ListOrders"
	ActListOrdersByToken     = "ListOrdersByNextToken"
	ActGetOrder              = "GetOrder"
	ActListOrderItems        = "ListOrderItems"
	ActListOrderItemsByToken = "ListOrderItemsByNextToken"
)

// Products
const (
	ActListMatchingProducts     = "ListMatchingProducts"
	ActGetMatchingProduct       = "GetMatchingProduct"
	ActGetMatchingProductForID  = "GetMatchingProductForId"
	ActGetCompetitivePriceSKU   = "GetCompetitivePricingForSKU"
	ActGetCompetitivePriceASIN  = "GetCompetitivePricingForASIN"
	ActGetLowestListingsSKU     = "GetLowestOfferListingsForSKU"
	ActGetLowestListingsASIN    = "GetLowestOfferListingsForASIN"
	ActGetMyPriceSKU            = "GetMyPriceForSKU"
	ActGetMyPriceASIN           = "GetMyPriceForASIN"
	ActGetProductCategoriesSKU  = "GetProductCategoriesForSKU"
	ActGetProductCategoriesASIN = "GetProductCategoriesForASIN"
)

// Feeds
const (
	ActSubmitFeed                = "SubmitFeed"
	ActGetFeedSubmissionList     = "GetFeedSubmissionList"
	ActGetFeedSubmissionsByToken = "GetFeedSubmissionListByNextToken"
	ActGetFeedSubmissionCount    = "GetFeedSubmissionCount"
	ActCancelFeedSubmissions     = "CancelFeedSubmissions"
	ActGetFeedSubmissionResult   = "GetFeedSubmissionResult"
)

// Reports
const (
	ActRequestReport            = "RequestReport"
	ActGetReportRequestList     = "GetReportRequestList"
	ActGetReportRequestsByToken = "GetReportRequestListByNextToken"
	ActGetReportRequestCount    = "GetReportRequestCount"
	ActCancelReportRequests     = "CancelReportRequests"
	ActGetReportList            = "GetReportList"
	ActGetReportsByToken        = "GetReportListByNextToken"
	ActGetReportCount           = "GetReportCount"
	ActGetReport                = "GetReport"
	ActGetReportScheduleList    = "GetReportScheduleList"
	ActGetReportScheduleCount   = "GetReportScheduleCount"
	ActManageReportSchedule     = "ManageReportSchedule"
	ActUpdateReportAcknowledge  = "UpdateReportAcknowledgements"
)

// FulfillmentInventory
const (
	ActListInventorySupply        = "ListInventorySupply"
	ActListInventorySupplyByToken = "ListInventorySupplyByNextToken"
)
