package dates

import (
	"math"
	"time"
)

const (
	DateFormat = "2006-01-02"
)

// FromUnixFloat converts a Reddit created_utc value (fractional Unix
// seconds) into a UTC time.
func FromUnixFloat(seconds float64) time.Time {
	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

func DateToString(from time.Time) string {
	return from.Format(DateFormat)
}
