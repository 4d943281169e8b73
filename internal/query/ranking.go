package query

import "fmt"

// Ranking weights of the recommendation score.
const (
	ViewWeight = 0.7
	LikeWeight = 0.3
)

// ScoreExpression computes the recommendation score per row at query time.
var ScoreExpression = fmt.Sprintf("(view_count * %g + like_count * %g)", ViewWeight, LikeWeight)

// Score returns the recommendation score of an article. It matches
// ScoreExpression and is never persisted.
func Score(viewCount, likeCount int64) float64 {
	return float64(viewCount)*ViewWeight + float64(likeCount)*LikeWeight
}
