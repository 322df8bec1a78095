package appointment

import (
	"time"

	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
)

// shopClock gives every use case "now" in the shop timezone; tests swap
// the func.
type shopClock struct {
	tz  string
	now func() time.Time
}

func newShopClock(tz string) shopClock {
	return shopClock{
		tz:  tz,
		now: func() time.Time { return timezone.NowIn(tz) },
	}
}
