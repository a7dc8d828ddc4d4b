package adapter

// searchResult represents one offer row in a retailer search API response.
// This is the wire shape most storefront search endpoints expose: an offer
// list with price, stock flag, and a product page URL.
type searchResult struct {
	SKU          string  `json:"sku"`
	Title        string  `json:"title"`
	Price        string  `json:"price"`
	Currency     string  `json:"currency"`
	InStock      *bool   `json:"inStock,omitempty"`
	ProductURL   string  `json:"productUrl"`
	ShippingCost *string `json:"shippingCost,omitempty"`
}

// searchResponse is the retailer search API envelope.
type searchResponse struct {
	Results []searchResult `json:"results"`
	Total   int            `json:"total"`
}
