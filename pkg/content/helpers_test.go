package content_test

import (
	"time"

	"github.com/silktrader/statuary/pkg/ntime"
)

func ntimeAt(t time.Time) ntime.NTime {
	return ntime.From(t)
}
