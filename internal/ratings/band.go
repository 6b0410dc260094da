package ratings

// RatingsBand is the qualitative bucket a snap's votes fall into. The six
// ordinals are part of the wire contract and round-trip losslessly.
type RatingsBand int32

const (
	BandVeryGood RatingsBand = iota
	BandGood
	BandNeutral
	BandPoor
	BandVeryPoor
	BandInsufficientVotes
)

// minVotes is the number of votes below which no band is assigned.
const minVotes = 25

// smoothedRatio is the Laplace-smoothed share of positive votes. The
// smoothing keeps snaps with very few votes away from the extremes.
func smoothedRatio(totalVotes, positiveVotes int64) float32 {
	return float32(positiveVotes+1) / float32(totalVotes+2)
}

// BandFromVotes derives the ratings band from raw vote counts.
func BandFromVotes(totalVotes, positiveVotes int64) RatingsBand {
	if totalVotes < minVotes {
		return BandInsufficientVotes
	}
	switch r := smoothedRatio(totalVotes, positiveVotes); {
	case r > 0.80:
		return BandVeryGood
	case r > 0.55:
		return BandGood
	case r > 0.45:
		return BandNeutral
	case r > 0.20:
		return BandPoor
	default:
		return BandVeryPoor
	}
}

func (b RatingsBand) String() string {
	switch b {
	case BandVeryGood:
		return "very-good"
	case BandGood:
		return "good"
	case BandNeutral:
		return "neutral"
	case BandPoor:
		return "poor"
	case BandVeryPoor:
		return "very-poor"
	case BandInsufficientVotes:
		return "insufficient-votes"
	default:
		return "unknown"
	}
}
