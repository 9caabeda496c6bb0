package timeutil

import (
	"testing"
	"time"
)

func TestNowUTCRoundTrip(t *testing.T) {
	before := time.Now().UTC().Unix()
	now := NowUTC()
	after := time.Now().UTC().Unix()

	if now.T < before || now.T > after {
		t.Errorf("NowUTC out of range: %d not in [%d, %d]", now.T, before, after)
	}
	if now.Time().Unix() != now.T {
		t.Errorf("Time() must preserve the timestamp: %d vs %d", now.Time().Unix(), now.T)
	}
	if now.Time().Location() != time.UTC {
		t.Error("Time() must stay in UTC")
	}
}
