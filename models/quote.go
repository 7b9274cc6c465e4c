package models

// AddItemRequest represents the request body for adding a catalog item to the quote
type AddItemRequest struct {
	ItemID string `json:"item_id"`
}

// UpdateQuantityRequest represents the request body for setting an item quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// QuoteLine represents one selection line in a quote summary
type QuoteLine struct {
	ItemID             string `json:"itemId"`
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	UnitPrice          int64  `json:"unitPrice"`
	LineTotal          int64  `json:"lineTotal"`
	UnitPriceFormatted string `json:"unitPriceFormatted"`
	LineTotalFormatted string `json:"lineTotalFormatted"`
}

// QuoteSummary represents the presentation-facing view of the current quote
type QuoteSummary struct {
	Lines             []QuoteLine  `json:"lines"`
	TotalItemCount    int          `json:"totalItemCount"`
	Subtotal          int64        `json:"subtotal"`
	SubtotalFormatted string       `json:"subtotalFormatted"`
	CustomerInfo      CustomerInfo `json:"customerInfo"`
}

// SubmitQuoteRequest represents the request body for submitting the quote
type SubmitQuoteRequest struct {
	CustomerInfo CustomerInfoUpdate `json:"customerInfo"`
}

// SubmitQuoteResponse is the acknowledgment returned after a quote submission.
// Submission has no wire format of its own; this echoes the accepted totals.
type SubmitQuoteResponse struct {
	ConfirmationCode  string `json:"confirmationCode"`
	ItemCount         int    `json:"itemCount"`
	Subtotal          int64  `json:"subtotal"`
	SubtotalFormatted string `json:"subtotalFormatted"`
	Message           string `json:"message"`
}
