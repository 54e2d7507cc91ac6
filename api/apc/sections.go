// Package apc: control constants and wire-level parameter names
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// Section is one versioned slice of the service API. Path is where the signed
// query gets POST-ed or GET-ed, Version goes into the query itself, NS is the
// XML namespace of the section's response documents, and Account (when set)
// overrides the account-type key the seller identifier is sent under.
type Section struct {
	Name    string
	Path    string
	Version string
	NS      string
	Account string
}

var (
	Sellers = &Section{
		Name:    "Sellers",
		Path:    "/Sellers/2011-07-01",
		Version: "2011-07-01",
		NS:      "https://mws.amazonservices.com/Sellers/2011-07-01",
	}
	Orders = &Section{
		Name:    "Orders",
		Path:    "/Orders/2013-09-01",
		Version: "2013-09-01",
		NS:      "https://mws.amazonservices.com/Orders/2013-09-01",
	}
	Products = &Section{
		Name:    "Products",
		Path:    "/Products/2011-10-01",
		Version: "2011-10-01",
		NS:      "http://mws.amazonservices.com/schema/Products/2011-10-01",
	}
	Feeds = &Section{
		Name:    "Feeds",
		Path:    "/",
		Version: "2009-01-01",
		NS:      "http://mws.amazonaws.com/doc/2009-01-01/",
		Account: AccountMerchant,
	}
	Reports = &Section{
		Name:    "Reports",
		Path:    "/",
		Version: "2009-01-01",
		NS:      "http://mws.amazonaws.com/doc/2009-01-01/",
		Account: AccountMerchant,
	}
	Inventory = &Section{
		Name:    "FulfillmentInventory",
		Path:    "/FulfillmentInventory/2010-10-01",
		Version: "2010-10-01",
		NS:      "http://mws.amazonaws.com/FulfillmentInventory/2010-10-01/",
	}
)

// Sections returns all sections this client speaks to.
func Sections() []*Section {
	return []*Section{Sellers, Orders, Products, Feeds, Reports, Inventory}
}

func (s *Section) String() string { return s.Name + " v" + s.Version }
