package interfaces

import (
	"context"

	"movequote/internal/domain/entities"
)

// DetectFile references one media file handed to the vision service.
type DetectFile struct {
	FileID   string `json:"file_id"`
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
}

// DetectRequest is the payload for one detection call.
type DetectRequest struct {
	JobID  string       `json:"job_id"`
	Prompt string       `json:"prompt,omitempty"`
	Files  []DetectFile `json:"files"`
}

// DetectResult is the tagged outcome reported by the vision service:
// Success carries detections, failure carries the service's error text.
// Transport-level failures surface as the method error instead; both drive
// the job to failed.
type DetectResult struct {
	Success    bool                 `json:"success"`
	Detections []entities.Detection `json:"detections,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// IVisionClient is the external object-detection collaborator. Calls are
// synchronous and bounded by a minutes-scale timeout. There is no mid-flight
// cancellation; a timeout surfaces as an error.

type IVisionClient interface {
	DetectText(ctx context.Context, req DetectRequest) (DetectResult, error)
	DetectAuto(ctx context.Context, req DetectRequest) (DetectResult, error)
}
