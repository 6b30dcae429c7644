package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetectionJobType distinguishes prompt-driven detection from fully automatic
// detection. The automatic path uses a stricter auto-add confidence bar
// because it has no human-supplied prompt to corroborate relevance.
type DetectionJobType string

const (
	DetectionJobTypeAuto DetectionJobType = "auto"
	DetectionJobTypeText DetectionJobType = "text"
)

// DetectionJobStatus is the job state machine:
//
//	pending -> processing -> completed
//	                      -> failed
//
// completed/failed are terminal; CompletedAt is set exactly on entry to a
// terminal state.
type DetectionJobStatus string

const (
	DetectionJobStatusPending    DetectionJobStatus = "pending"
	DetectionJobStatusProcessing DetectionJobStatus = "processing"
	DetectionJobStatusCompleted  DetectionJobStatus = "completed"
	DetectionJobStatusFailed     DetectionJobStatus = "failed"
)

// Terminal reports whether s is a terminal job status.
func (s DetectionJobStatus) Terminal() bool {
	return s == DetectionJobStatusCompleted || s == DetectionJobStatusFailed
}

// Detection is one labeled object returned by the vision service.
type Detection struct {
	Name        string    `json:"name"`
	Confidence  float64   `json:"confidence"`
	Quantity    int       `json:"quantity"`
	BoundingBox []float64 `json:"bbox,omitempty"`
}

// MappedItem is a detection after catalog reconciliation. CatalogItemID is
// empty when no catalog entry matched; Category falls back to "Unknown".
type MappedItem struct {
	DetectedName    string           `json:"detected_name"`
	Confidence      float64          `json:"confidence_score"`
	MatchWeight     float64          `json:"match_weight"`
	Quantity        int              `json:"quantity"`
	BoundingBox     []float64        `json:"bounding_box,omitempty"`
	CatalogItemID   string           `json:"catalog_item_id,omitempty"`
	CatalogItemName string           `json:"catalog_item_name,omitempty"`
	CubicFeet       *decimal.Decimal `json:"cubic_feet,omitempty"`
	LaborMultiplier decimal.Decimal  `json:"labor_multiplier"`
	Category        string           `json:"category"`
}

// DetectionResults holds the raw detections and the post-match mapped items
// stored on a completed job.
type DetectionResults struct {
	Detections  []Detection  `json:"detections"`
	MappedItems []MappedItem `json:"mapped_items"`
}

// DetectionJob is the lifecycle record of one call to the vision service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id, sorted by created_at
type DetectionJob struct {
	ID           string             `json:"id"`
	TenantID     string             `json:"tenant_id"`
	QuoteID      string             `json:"quote_id"`
	MediaIDs     []string           `json:"media_ids"`
	JobType      DetectionJobType   `json:"job_type"`
	Prompt       string             `json:"prompt,omitempty"`
	AutoAddItems bool               `json:"auto_add_items"`
	Status       DetectionJobStatus `json:"status"`
	Results      *DetectionResults  `json:"results,omitempty"`
	ErrorMessage string             `json:"error_message,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
}
