package domain

// Flight is a single flight claimed by a pilot on XContest.
type Flight struct {
	ID        uint64 `json:"id"`
	Duration  string `json:"duration"`   // ISO-8601 duration, e.g. "PT2H15M"
	StartTime string `json:"start_time"` // ISO-8601 date-time
	URL       string `json:"url"`
	By        string `json:"by"`
	Route     Route  `json:"route"`
}

// Route classifies the flight geometry with its scored distance and points.
type Route struct {
	Type     string  `json:"type"`
	Distance float64 `json:"distance"` // kilometers
	Points   float64 `json:"points"`
}

// Date returns the first ten characters of StartTime, the YYYY-MM-DD part for
// well-formed values. Shorter values are returned whole.
func (f Flight) Date() string {
	n := 0
	for i := range f.StartTime {
		if n == 10 {
			return f.StartTime[:i]
		}
		n++
	}
	return f.StartTime
}
