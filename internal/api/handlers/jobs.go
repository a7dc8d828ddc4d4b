package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

const maxJobHistoryLimit = 100

// JobRunSource is the slice of the store the jobs handler reads from.
type JobRunSource interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler exposes refresh job run history.
type JobsHandler struct {
	store JobRunSource
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobRunSource) *JobsHandler {
	return &JobsHandler{store: s}
}

// ListJobsOutput carries the latest run per job.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// JobHistoryInput selects a job and how far back to look.
type JobHistoryInput struct {
	JobName string `path:"job_name" doc:"Job name, e.g. refresh"`
	Limit   int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum runs to return"`
}

// JobHistoryOutput carries one job's run history, newest first.
type JobHistoryOutput struct {
	Body []domain.JobRun
}

// ListJobs returns the most recent run for each distinct job.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}
	return &ListJobsOutput{Body: orEmptyRuns(runs)}, nil
}

// GetJobHistory returns the run history for one job.
func (h *JobsHandler) GetJobHistory(ctx context.Context, input *JobHistoryInput) (*JobHistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > maxJobHistoryLimit {
		limit = maxJobHistoryLimit
	}

	runs, err := h.store.ListJobRuns(ctx, input.JobName, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}
	return &JobHistoryOutput{Body: orEmptyRuns(runs)}, nil
}

// orEmptyRuns keeps an empty result rendering as [] instead of null.
func orEmptyRuns(runs []domain.JobRun) []domain.JobRun {
	if runs == nil {
		return []domain.JobRun{}
	}
	return runs
}

// RegisterJobRoutes registers job history endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List latest job runs",
		Description: "Returns the most recent run record for each distinct refresh job.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Get job run history",
		Description: "Returns the run history for one job, newest first.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)
}
