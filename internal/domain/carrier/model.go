package carrier

import "time"

// Match is the result of one provider recognizing a tracking number.
type Match struct {
	ProviderKey  string `json:"provider_key"`
	ProviderName string `json:"provider_name"`
	TrackingURL  string `json:"tracking_url"`

	// AmbiguityScore ranks this match against competing matches for the
	// same query. It is an ordinal signal in [0,100], not a probability,
	// and is only comparable across matches for the same tracking number.
	AmbiguityScore int `json:"ambiguity_score"`
}

// IdentifyRequest is the API request payload for identifying a tracking number.
type IdentifyRequest struct {
	TrackingNumber string `json:"tracking_number"`
	ShippingFrom   string `json:"shipping_from" binding:"required"`
	ShippingTo     string `json:"shipping_to" binding:"required"`
}

// IdentifyResponse is the ranked result of an identification query.
// Best is nil and Candidates empty when no carrier recognizes the number —
// a routine outcome, not an error.
type IdentifyResponse struct {
	TrackingNumber string  `json:"tracking_number"`
	Best           *Match  `json:"best,omitempty"`
	Candidates     []Match `json:"candidates"`
}

// CarrierInfo describes a registered provider for API introspection.
type CarrierInfo struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon,omitempty"`
	FromCountries []string `json:"from_countries"`
	ToCountries   []string `json:"to_countries"`
}

// BatchStatus represents the processing status of a batch identification job.
type BatchStatus string

const (
	BatchQueued     BatchStatus = "queued"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
)

// BatchItem is a single tracking number within a batch job, plus its
// results once the worker has processed it.
type BatchItem struct {
	TrackingNumber string  `json:"tracking_number"`
	ShippingFrom   string  `json:"shipping_from"`
	ShippingTo     string  `json:"shipping_to"`
	Best           *Match  `json:"best,omitempty"`
	Candidates     []Match `json:"candidates,omitempty"`
}

// BatchJob is a persisted batch identification job.
type BatchJob struct {
	ID           string      `json:"id"`
	Status       BatchStatus `json:"status"`
	Items        []BatchItem `json:"items"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// BatchRequest is the API request payload for batch identification.
type BatchRequest struct {
	Items []IdentifyRequest `json:"items" binding:"required,min=1,dive"`
}

// BatchResponse is the API response after a batch job is enqueued.
type BatchResponse struct {
	ID        string      `json:"id"`
	Status    BatchStatus `json:"status"`
	ItemCount int         `json:"item_count"`
}
