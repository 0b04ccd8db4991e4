package api_probe

import (
	"time"

	"github.com/NordCoder/healthcheck-mcp/internal/domain/probe"
)

// monotonicClock derives wall time from the process monotonic clock, so
// successive readings never go backwards even if the system clock is stepped.
type monotonicClock struct{ base time.Time }

func NewClock() probe.Clock { return monotonicClock{base: time.Now()} }

func (c monotonicClock) Now() time.Time { return c.base.Add(time.Since(c.base)) }
