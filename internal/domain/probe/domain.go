package probe

import "time"

type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// Result is the outcome of a single probe: either Up or Down, never both.
type Result interface {
	Status() Status
	CheckedAt() time.Time
	isResult()
}

// Up means the target answered with an HTTP response, whatever its status code.
type Up struct {
	StatusCode int
	Latency    time.Duration
	At         time.Time
}

func (Up) Status() Status         { return StatusUp }
func (u Up) CheckedAt() time.Time { return u.At }
func (Up) isResult()              {}

// Down means no HTTP response was received.
type Down struct {
	Reason string
	At     time.Time
}

func (Down) Status() Status         { return StatusDown }
func (d Down) CheckedAt() time.Time { return d.At }
func (Down) isResult()              {}
