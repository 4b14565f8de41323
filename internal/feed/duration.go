package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// PrettyDuration converts an ISO-8601 duration such as "PT1H30M" into "1h 30m".
// Values that do not parse, or are negative, render as "0s".
func PrettyDuration(iso string) string {
	d, err := duration.Parse(iso)
	if err != nil {
		return Humanize(0)
	}
	td := d.ToTimeDuration()
	if td < 0 {
		td = 0
	}
	return Humanize(td)
}

type unit struct {
	name string
	size uint64
}

// Calendar units use the Julian year, and a month is a twelfth of it.
var units = []unit{
	{"y", 31_557_600},
	{"M", 2_630_016},
	{"d", 86_400},
	{"h", 3_600},
	{"m", 60},
	{"s", 1},
}

// Humanize renders d as space-separated units, largest first, omitting zero components.
func Humanize(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	secs := uint64(d / time.Second)
	nanos := uint64(d % time.Second)

	var parts []string
	for _, u := range units {
		if n := secs / u.size; n > 0 {
			parts = append(parts, strconv.FormatUint(n, 10)+u.name)
			secs %= u.size
		}
	}

	if ms := nanos / 1_000_000; ms > 0 {
		parts = append(parts, strconv.FormatUint(ms, 10)+"ms")
	}
	if us := nanos / 1_000 % 1_000; us > 0 {
		parts = append(parts, strconv.FormatUint(us, 10)+"us")
	}
	if ns := nanos % 1_000; ns > 0 {
		parts = append(parts, strconv.FormatUint(ns, 10)+"ns")
	}

	return strings.Join(parts, " ")
}
