// Package apc: control constants and wire-level parameter names
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// SignatureVersion 2 authentication parameters - every signed query carries
// all of these (plus the seller identifier under its account-type key, and
// MWSAuthToken when acting on a delegated account).
const (
	ParamAccessKeyID      = "AWSAccessKeyId"
	ParamAction           = "Action"
	ParamAuthToken        = "MWSAuthToken"
	ParamSignature        = "Signature" // appended after signing, never signed itself
	ParamSignatureMethod  = "SignatureMethod"
	ParamSignatureVersion = "SignatureVersion"
	ParamTimestamp        = "Timestamp"
	ParamVersion          = "Version"
)

const (
	SignatureV2         = "2"
	SignatureHmacSHA256 = "HmacSHA256"
)

// account types: the query key the seller identifier goes under
// (varies by section - see Section.Account)
const (
	AccountSeller   = "SellerId"
	AccountMerchant = "Merchant"
)

// assorted query params shared across sections
const (
	ParamNextToken   = "NextToken"
	ParamMarketplace = "MarketplaceId"
)

// service error codes (ErrorResponse.Error.Code)
const (
	ErrCodeAccessDenied            = "AccessDenied"
	ErrCodeContentMD5DoesNotMatch  = "ContentMD5DoesNotMatch"
	ErrCodeContentMD5Missing       = "ContentMD5Missing"
	ErrCodeFeedResultNotReady      = "FeedProcessingResultNotReady"
	ErrCodeInputStreamDisconnected = "InputStreamDisconnected"
	ErrCodeInternalError           = "InternalError"
	ErrCodeInvalidAddress          = "InvalidAddress"
	ErrCodeInvalidParameterValue   = "InvalidParameterValue"
	ErrCodeQuotaExceeded           = "QuotaExceeded"
	ErrCodeSignatureDoesNotMatch   = "SignatureDoesNotMatch"
	ErrCodeThrottled               = "RequestThrottled"
)

// feed and report processing statuses
const (
	StatusSubmitted  = "_SUBMITTED_"
	StatusInProgress = "_IN_PROGRESS_"
	StatusCancelled  = "_CANCELLED_"
	StatusDone       = "_DONE_"
	StatusDoneNoData = "_DONE_NO_DATA_"
)

// GetServiceStatus values
const (
	ServiceGreen  = "GREEN"
	ServiceGreenI = "GREEN_I" // green with an informational note
	ServiceYellow = "YELLOW"
	ServiceRed    = "RED"
)
