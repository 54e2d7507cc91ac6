// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/cmn"
	"github.com/sellerkit/mws/cmn/cos"
)

// Every Products operation is scoped to a single marketplace; the ASIN- and
// SKU-keyed variants are wire-identical up to the list parameter name.

func doProducts(bp BaseParams, action string, q cos.StrKVs) (*Response, error) {
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = apc.Products
		reqParams.Action = action
		reqParams.Query = q
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// ListMatchingProducts searches the marketplace catalog by free-form query.
// queryContextID optionally narrows the search to a context (browse node).
func ListMatchingProducts(bp BaseParams, marketplaceID, query, queryContextID string) (*Response, error) {
	return doProducts(bp, apc.ActListMatchingProducts, cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"Query":              query,
		"QueryContextId":     queryContextID,
	})
}

func GetMatchingProduct(bp BaseParams, marketplaceID string, asins []string) (*Response, error) {
	q := cos.StrKVs{apc.ParamMarketplace: marketplaceID}
	cmn.EnumerateParam(q, "ASINList.ASIN", asins)
	return doProducts(bp, apc.ActGetMatchingProduct, q)
}

// GetMatchingProductForID looks products up by an external identifier:
// idType is one of ASIN, GCID, SellerSKU, UPC, EAN, ISBN, JAN.
func GetMatchingProductForID(bp BaseParams, marketplaceID, idType string, ids []string) (*Response, error) {
	q := cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"IdType":             idType,
	}
	cmn.EnumerateParam(q, "IdList.Id", ids)
	return doProducts(bp, apc.ActGetMatchingProductForID, q)
}

func GetCompetitivePricingForSKU(bp BaseParams, marketplaceID string, skus []string) (*Response, error) {
	q := cos.StrKVs{apc.ParamMarketplace: marketplaceID}
	cmn.EnumerateParam(q, "SellerSKUList.SellerSKU", skus)
	return doProducts(bp, apc.ActGetCompetitivePriceSKU, q)
}

func GetCompetitivePricingForASIN(bp BaseParams, marketplaceID string, asins []string) (*Response, error) {
	q := cos.StrKVs{apc.ParamMarketplace: marketplaceID}
	cmn.EnumerateParam(q, "ASINList.ASIN", asins)
	return doProducts(bp, apc.ActGetCompetitivePriceASIN, q)
}

// GetLowestOfferListingsForSKU returns, per SKU, the lowest active listings
// by price point. condition filters by item condition ("Any" when empty on
// the service side); excludeMe drops the caller's own listings.
func GetLowestOfferListingsForSKU(bp BaseParams, marketplaceID string, skus []string, condition string, excludeMe *bool) (*Response, error) {
	q := cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"ItemCondition":      condition,
	}
	cmn.EnumerateParam(q, "SellerSKUList.SellerSKU", skus)
	setBool(q, "ExcludeMe", excludeMe)
	return doProducts(bp, apc.ActGetLowestListingsSKU, q)
}

func GetLowestOfferListingsForASIN(bp BaseParams, marketplaceID string, asins []string, condition string, excludeMe *bool) (*Response, error) {
	q := cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"ItemCondition":      condition,
	}
	cmn.EnumerateParam(q, "ASINList.ASIN", asins)
	setBool(q, "ExcludeMe", excludeMe)
	return doProducts(bp, apc.ActGetLowestListingsASIN, q)
}

func GetMyPriceForSKU(bp BaseParams, marketplaceID string, skus []string, condition string) (*Response, error) {
	q := cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"ItemCondition":      condition,
	}
	cmn.EnumerateParam(q, "SellerSKUList.SellerSKU", skus)
	return doProducts(bp, apc.ActGetMyPriceSKU, q)
}

func GetMyPriceForASIN(bp BaseParams, marketplaceID string, asins []string, condition string) (*Response, error) {
	q := cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"ItemCondition":      condition,
	}
	cmn.EnumerateParam(q, "ASINList.ASIN", asins)
	return doProducts(bp, apc.ActGetMyPriceASIN, q)
}

func GetProductCategoriesForSKU(bp BaseParams, marketplaceID, sku string) (*Response, error) {
	return doProducts(bp, apc.ActGetProductCategoriesSKU, cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"SellerSKU":          sku,
	})
}

func GetProductCategoriesForASIN(bp BaseParams, marketplaceID, asin string) (*Response, error) {
	return doProducts(bp, apc.ActGetProductCategoriesASIN, cos.StrKVs{
		apc.ParamMarketplace: marketplaceID,
		"ASIN":               asin,
	})
}
