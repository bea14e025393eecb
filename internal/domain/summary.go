package domain

// DailySummary is a derived view over the sessions attributed to one calendar
// date. Open sessions contribute their live elapsed minutes.
type DailySummary struct {
	Date                  string
	TotalMinutes          int
	DistinctActiveWorkers int
	CompletedSessionCount int
}

// WeeklySummary is a derived view over the 7 calendar days ending at
// WindowEnd inclusive. Only completed sessions contribute, unlike the daily
// view; the asymmetry matches observed product behavior.
type WeeklySummary struct {
	WindowStart           string
	WindowEnd             string
	TotalMinutes          int
	CompletedSessionCount int
	// AverageMinutesPerDay always divides by 7, regardless of how many days
	// in the window have data.
	AverageMinutesPerDay int
}
