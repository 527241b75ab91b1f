package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carrierid/internal/domain/carrier"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const tableName = "batch_jobs"

var _ carrier.BatchStore = (*SupabaseStore)(nil)

// SupabaseStore implements BatchStore using the Supabase Go SDK.
type SupabaseStore struct {
	client *supa.Client
}

// NewSupabaseStore creates a new Supabase-backed batch job store.
func NewSupabaseStore(supabaseURL, serviceKey string) (*SupabaseStore, error) {
	client, err := supa.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating supabase client: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

// supabaseRow is the internal representation for Supabase PostgREST insert/update.
type supabaseRow struct {
	ID           string              `json:"id,omitempty"`
	Status       string              `json:"status"`
	Items        []carrier.BatchItem `json:"items,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    string              `json:"created_at,omitempty"`
	UpdatedAt    string              `json:"updated_at,omitempty"`
	CompletedAt  *string             `json:"completed_at,omitempty"`
}

// Create inserts a new batch job record.
func (s *SupabaseStore) Create(ctx context.Context, job *carrier.BatchJob) error {
	row := supabaseRow{
		ID:     job.ID,
		Status: string(job.Status),
		Items:  job.Items,
	}

	var results []supabaseRow
	data, _, err := s.client.From(tableName).Insert(row, false, "", "representation", "").Execute()
	if err != nil {
		return fmt.Errorf("inserting batch job: %w", err)
	}

	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("parsing insert response: %w", err)
	}

	if len(results) > 0 {
		if t, ok := parseTime(results[0].CreatedAt); ok {
			job.CreatedAt = t
		}
		if t, ok := parseTime(results[0].UpdatedAt); ok {
			job.UpdatedAt = t
		}
	}

	return nil
}

// GetByID retrieves a batch job by its ID. Returns nil, nil when no record
// is found.
func (s *SupabaseStore) GetByID(ctx context.Context, id string) (*carrier.BatchJob, error) {
	data, _, err := s.client.From(tableName).Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching batch job: %w", err)
	}

	var rows []supabaseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing batch job: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return rowToJob(&rows[0]), nil
}

// UpdateStatus updates the status of a batch job.
func (s *SupabaseStore) UpdateStatus(ctx context.Context, id string, status carrier.BatchStatus, errMsg string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	update := map[string]any{
		"status":     string(status),
		"updated_at": now,
	}

	if errMsg != "" {
		update["error_message"] = errMsg
	}

	if status == carrier.BatchCompleted {
		update["completed_at"] = now
	}

	_, _, err := s.client.From(tableName).Update(update, "", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("updating batch status: %w", err)
	}

	return nil
}

// UpdateResults writes the processed items back and marks the job completed.
func (s *SupabaseStore) UpdateResults(ctx context.Context, id string, items []carrier.BatchItem) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	update := map[string]any{
		"status":       string(carrier.BatchCompleted),
		"items":        items,
		"updated_at":   now,
		"completed_at": now,
	}

	_, _, err := s.client.From(tableName).Update(update, "", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("updating batch results: %w", err)
	}

	return nil
}

// ListStale retrieves batch jobs stuck in queued/processing for longer than olderThan.
func (s *SupabaseStore) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*carrier.BatchJob, error) {
	if limit <= 0 {
		limit = 50
	}

	threshold := olderThan.UTC().Format(time.RFC3339Nano)

	query := s.client.From(tableName).
		Select("*", "exact", false).
		In("status", []string{string(carrier.BatchQueued), string(carrier.BatchProcessing)}).
		Lt("updated_at", threshold).
		Order("updated_at", &postgrest.OrderOpts{Ascending: true}).
		Range(0, limit-1, "")

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("listing stale batches: %w", err)
	}

	var rows []supabaseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing stale batches: %w", err)
	}

	jobs := make([]*carrier.BatchJob, len(rows))
	for i := range rows {
		jobs[i] = rowToJob(&rows[i])
	}

	return jobs, nil
}

// rowToJob converts a supabaseRow to a BatchJob.
func rowToJob(row *supabaseRow) *carrier.BatchJob {
	job := &carrier.BatchJob{
		ID:     row.ID,
		Status: carrier.BatchStatus(row.Status),
		Items:  row.Items,
	}

	if row.ErrorMessage != nil {
		job.ErrorMessage = *row.ErrorMessage
	}
	if t, ok := parseTime(row.CreatedAt); ok {
		job.CreatedAt = t
	}
	if t, ok := parseTime(row.UpdatedAt); ok {
		job.UpdatedAt = t
	}
	if row.CompletedAt != nil {
		if t, ok := parseTime(*row.CompletedAt); ok {
			job.CompletedAt = &t
		}
	}

	return job
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
