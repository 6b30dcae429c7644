package response

import (
	"time"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
)

type DetectionJobResponse struct {
	ID           string                     `json:"id"`
	TenantID     string                     `json:"tenant_id"`
	QuoteID      string                     `json:"quote_id"`
	MediaIDs     []string                   `json:"media_ids"`
	JobType      string                     `json:"job_type"`
	Prompt       string                     `json:"prompt,omitempty"`
	AutoAddItems bool                       `json:"auto_add_items"`
	Status       string                     `json:"status"`
	Results      *entities.DetectionResults `json:"results,omitempty"`
	ErrorMessage string                     `json:"error_message,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	CompletedAt  *time.Time                 `json:"completed_at,omitempty"`
}

func FromDetectionJob(job entities.DetectionJob) DetectionJobResponse {
	return DetectionJobResponse{
		ID:           job.ID,
		TenantID:     job.TenantID,
		QuoteID:      job.QuoteID,
		MediaIDs:     job.MediaIDs,
		JobType:      string(job.JobType),
		Prompt:       job.Prompt,
		AutoAddItems: job.AutoAddItems,
		Status:       string(job.Status),
		Results:      job.Results,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt,
		CompletedAt:  job.CompletedAt,
	}
}

type DetectionJobListResponse struct {
	Jobs       []DetectionJobResponse `json:"jobs"`
	Pagination Pagination             `json:"pagination"`
}

func FromJobPage(page usecase.JobPage) DetectionJobListResponse {
	jobs := make([]DetectionJobResponse, 0, len(page.Jobs))
	for _, job := range page.Jobs {
		jobs = append(jobs, FromDetectionJob(job))
	}
	return DetectionJobListResponse{
		Jobs: jobs,
		Pagination: Pagination{
			Total:       page.Total,
			Pages:       page.Pages,
			CurrentPage: page.CurrentPage,
			PerPage:     page.PerPage,
		},
	}
}
