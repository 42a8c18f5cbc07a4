// Package clock provides the time source used to stamp reports.
package clock

import "time"

// NowFunc returns the current time, tests replace it to get stable timestamps.
var NowFunc = time.Now

// Now returns NowFunc()
func Now() time.Time { return NowFunc() }
