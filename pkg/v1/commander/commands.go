package commander

import "github.com/google/uuid"

// ResolveURLCommand asks url resolver to find retailer product behind manually submitted url.
type ResolveURLCommand struct {
	ManualURLMatchingID uuid.UUID `json:"manualUrlMatchingId"`
	BrandProductID      uuid.UUID `json:"brandProductId"`
	RetailerID          uuid.UUID `json:"retailerId"`
	URL                 string    `json:"url"`
}

// Resolution statuses reported by url resolver.
const (
	StatusResolved = "resolved"
	StatusFailed   = "failed"
)

// URLMatchingResult is a message sent back by url resolver once url matching is processed.
type URLMatchingResult struct {
	ManualURLMatchingID uuid.UUID `json:"manualUrlMatchingId"`
	Status              string    `json:"status"`
}
