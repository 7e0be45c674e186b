package rcclient

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// JobGroup returns the stats group name the daemon assigns to a job.
func JobGroup(jobID uint64) string {
	return fmt.Sprintf("job/%d", jobID)
}

// FilteredPayload builds the core/stats body for a StatsRequest.
// Precedence: explicit group, then the job's group, then an empty object.
func FilteredPayload(req StatsRequest) ([]byte, error) {
	switch {
	case req.Group != nil:
		return sjson.SetBytes([]byte("{}"), "group", *req.Group)
	case req.JobID != nil:
		return sjson.SetBytes([]byte("{}"), "group", JobGroup(*req.JobID))
	default:
		return []byte("{}"), nil
	}
}

// GroupPayload builds a body carrying only an optional group.
func GroupPayload(group *string) ([]byte, error) {
	if group == nil {
		return []byte("{}"), nil
	}
	return sjson.SetBytes([]byte("{}"), "group", *group)
}

// JobPayload builds the job stats body: jobid always, group when given.
func JobPayload(jobID uint64, group *string) ([]byte, error) {
	payload, err := sjson.SetBytes([]byte("{}"), "jobid", jobID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return payload, nil
	}
	return sjson.SetBytes(payload, "group", *group)
}
