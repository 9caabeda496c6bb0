package timeutil

import "time"

// TimeUTC carries a Unix timestamp in seconds, always UTC. Log messages and
// queue payloads use it so timestamps never depend on the host timezone.
type TimeUTC struct{ T int64 }

func NowUTC() TimeUTC {
	return TimeUTC{T: time.Now().UTC().Unix()}
}

// Time converts back to the standard library representation.
func (t TimeUTC) Time() time.Time {
	return time.Unix(t.T, 0).UTC()
}
