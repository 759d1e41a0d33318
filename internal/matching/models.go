package matching

import (
	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/google/uuid"
)

// Action is kind of user decision on matching task.
type Action string

const (
	ActionSubmit Action = "submit"
	ActionSkip   Action = "skip"
)

// Submission is user decision on matching task.
// Retailer product wins over url, neither of them invalidates the whole pair.
// Empty strings count as not set.
type Submission struct {
	BrandProductID    uuid.UUID `json:"brand_product_id"`
	RetailerID        uuid.UUID `json:"retailer_id"`
	RetailerProductID *string   `json:"retailer_product_id"`
	URL               *string   `json:"url"`
	Action            Action    `json:"action"`
}

// TaskID returns identifier of task the submission is for.
func (s Submission) TaskID() models.MatchingTaskID {
	return models.MatchingTaskID{BrandProductID: s.BrandProductID, RetailerID: s.RetailerID}
}

// NextTask identifies next matching task, or tells there are no more tasks.
type NextTask struct {
	BrandProductID *uuid.UUID `json:"brand_product_id,omitempty"`
	RetailerID     *uuid.UUID `json:"retailer_id,omitempty"`
	Finished       bool       `json:"finished,omitempty"`
}

// TaskRequest is request for full matching task.
type TaskRequest struct {
	Identifier   models.MatchingTaskID `json:"identifier"`
	GlobalFilter filter.GlobalFilter   `json:"global_filter"`
}
