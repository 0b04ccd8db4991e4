package probe

import (
	"context"
	"time"
)

// Pinger issues one GET and reports the response status code.
// A non-nil error means no response was received.
type Pinger interface {
	Ping(ctx context.Context, url string) (code int, err error)
}

type Clock interface {
	Now() time.Time
}
