package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type JobsUpdatedEvent struct {
	Type         string `json:"type"`
	JobsUpserted int    `json:"jobs_upserted"`
	Timestamp    string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyJobsUpdated broadcasts that the active job set changed, so clients
// can refetch listings and recommendations.
func NotifyJobsUpdated(jobsUpserted int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:         "jobs_updated",
		JobsUpserted: jobsUpserted,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
