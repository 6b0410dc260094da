package grpc

import (
	pb "github.com/M7mdisk/app-center-ratings/api/v1"
	"github.com/M7mdisk/app-center-ratings/internal/ratings"
)

func toProtoChartData(chartData ratings.ChartData, snapName string) *pb.ChartData {
	return &pb.ChartData{
		RawRating: chartData.RawRating,
		Rating:    toProtoRating(chartData.Rating, snapName),
	}
}

func toProtoRating(rating ratings.Rating, snapName string) *pb.Rating {
	return &pb.Rating{
		SnapId:      rating.SnapID,
		TotalVotes:  rating.TotalVotes,
		RatingsBand: int32(rating.RatingsBand),
		SnapName:    snapName,
	}
}

// RatingFromProto converts a wire rating back into the domain model. The
// band ordinal round-trips unchanged.
func RatingFromProto(r *pb.Rating) ratings.Rating {
	return ratings.Rating{
		SnapID:      r.GetSnapId(),
		TotalVotes:  r.GetTotalVotes(),
		RatingsBand: ratings.RatingsBand(r.GetRatingsBand()),
	}
}
