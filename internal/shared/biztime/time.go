// Package biztime resolves the business clock for ticket numbering and
// display timestamps. The service timezone is a constant UTC+5:30 offset,
// applied regardless of the host timezone. It is deliberately not an IANA
// zone: there are no DST rules to apply.
package biztime

import "time"

const (
	bucketLayout    = "02012006"
	timestampLayout = "02/01/2006, 15:04:05"
)

var location = time.FixedZone("UTC+05:30", 5*3600+30*60)

// Location returns the fixed business timezone.
func Location() *time.Location {
	return location
}

// Now returns the current instant in the business timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// DayBucket formats the current instant as DDMMYYYY in the business timezone.
func DayBucket() string {
	return DayBucketAt(time.Now())
}

// DayBucketAt formats t as DDMMYYYY in the business timezone.
func DayBucketAt(t time.Time) string {
	return t.In(location).Format(bucketLayout)
}

// Timestamp renders the current instant in the human-readable form stored
// on ticket rows.
func Timestamp() string {
	return TimestampAt(time.Now())
}

// TimestampAt renders t in the human-readable form stored on ticket rows.
func TimestampAt(t time.Time) string {
	return t.In(location).Format(timestampLayout)
}
