package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const TimestampLayout = time.RFC3339Nano

const unknownReason = "unknown error"

var ErrUnknownResult = errors.New("unknown probe result")

// Payload is the wire shape of a Result. Absent fields are encoded as explicit nulls.
type Payload struct {
	Status         Status  `json:"status"`
	HTTPStatusCode *int    `json:"http_status_code"`
	LatencyMS      *int64  `json:"latency_ms"`
	Timestamp      string  `json:"timestamp"`
	ErrorDetails   *string `json:"error_details"`
}

func Project(r Result) (Payload, error) {
	switch v := r.(type) {
	case Up:
		code := v.StatusCode
		ms := v.Latency.Milliseconds()
		if ms < 0 {
			ms = 0
		}
		return Payload{
			Status:         StatusUp,
			HTTPStatusCode: &code,
			LatencyMS:      &ms,
			Timestamp:      formatTimestamp(v.At),
		}, nil
	case Down:
		reason := v.Reason
		if reason == "" {
			reason = unknownReason
		}
		return Payload{
			Status:       StatusDown,
			Timestamp:    formatTimestamp(v.At),
			ErrorDetails: &reason,
		}, nil
	default:
		return Payload{}, fmt.Errorf("%w: %T", ErrUnknownResult, r)
	}
}

func Encode(r Result) ([]byte, error) {
	p, err := Project(r)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal probe result: %w", err)
	}
	return b, nil
}

// ParseTimestamp is the inverse of the timestamp projection.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
