package carrier

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TaskTypeIdentifyBatch is the asynq task type for batch identification jobs.
const TaskTypeIdentifyBatch = "carrier:identify_batch"

// IdentifyBatchPayload is the serialized payload for a batch identification task.
type IdentifyBatchPayload struct {
	BatchID string `json:"batch_id"`
}

// NewIdentifyBatchTask creates a new asynq task for processing a batch job.
func NewIdentifyBatchTask(batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(IdentifyBatchPayload{BatchID: batchID})
	if err != nil {
		return nil, fmt.Errorf("marshaling task payload: %w", err)
	}
	return asynq.NewTask(TaskTypeIdentifyBatch, payload), nil
}

// ParseIdentifyBatchPayload deserializes the task payload.
func ParseIdentifyBatchPayload(data []byte) (*IdentifyBatchPayload, error) {
	var p IdentifyBatchPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshaling task payload: %w", err)
	}
	return &p, nil
}
