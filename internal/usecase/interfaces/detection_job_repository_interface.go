package interfaces

import (
	"context"
	"errors"
	"time"

	"movequote/internal/domain/entities"
)

// ErrJobNotPending is returned by MarkProcessing when the job has already left
// the pending state. Reconciliation uses it to refuse re-running a job that is
// processing or terminal.
var ErrJobNotPending = errors.New("detection job is not pending")

// IDetectionJobRepository abstracts DynamoDB persistence for DetectionJob.
//
// State transitions are conditional writes on the current status, which makes
// every transition observable exactly once:
//   - MarkProcessing: pending -> processing (persisted before the vision call)
//   - Complete:       processing -> completed, stores results, sets completed_at
//   - Fail:           processing -> failed, stores the error verbatim, sets completed_at

type IDetectionJobRepository interface {
	Create(ctx context.Context, job entities.DetectionJob) (entities.DetectionJob, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.DetectionJob, error)
	List(ctx context.Context, tenantID string) ([]entities.DetectionJob, error)
	MarkProcessing(ctx context.Context, id string) (entities.DetectionJob, error)
	Complete(ctx context.Context, id string, results entities.DetectionResults, completedAt time.Time) (entities.DetectionJob, error)
	Fail(ctx context.Context, id string, errorMessage string, completedAt time.Time) (entities.DetectionJob, error)
}
