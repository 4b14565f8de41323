package domain

import "time"

// RunStats holds statistics about a single feed run.
type RunStats struct {
	Users         int
	Resolved      int
	ResolveErrors int
	Pilots        int
	FetchErrors   int
	Flights       int
	Archived      int
	Published     int
	PublishErrors int
	Duration      time.Duration
}
