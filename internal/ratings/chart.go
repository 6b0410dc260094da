package ratings

// VoteSummary is one snap's aggregated votes within a timeframe, as
// produced by the vote store.
type VoteSummary struct {
	SnapID        string
	TotalVotes    int64
	PositiveVotes int64
}

// Rating is the immutable per-snap vote aggregate carried in a chart.
type Rating struct {
	SnapID      string
	TotalVotes  uint64
	RatingsBand RatingsBand
}

// ChartData pairs a rating with the raw score the store ranked it by.
type ChartData struct {
	RawRating float32
	Rating    Rating
}

// Chart is the ranked list of snaps for one timeframe. Data keeps the
// store's ordering; nothing downstream re-sorts it.
type Chart struct {
	Timeframe Timeframe
	Data      []ChartData
}

// NewRating builds a Rating from a vote summary.
func NewRating(s VoteSummary) Rating {
	return Rating{
		SnapID:      s.SnapID,
		TotalVotes:  uint64(s.TotalVotes),
		RatingsBand: BandFromVotes(s.TotalVotes, s.PositiveVotes),
	}
}

// NewChart maps ordered vote summaries into a Chart one-to-one. The store
// already filtered, deduplicated and ranked the summaries.
func NewChart(timeframe Timeframe, summaries []VoteSummary) Chart {
	data := make([]ChartData, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, ChartData{
			RawRating: smoothedRatio(s.TotalVotes, s.PositiveVotes),
			Rating:    NewRating(s),
		})
	}
	return Chart{Timeframe: timeframe, Data: data}
}
