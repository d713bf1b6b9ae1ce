// Package ranking computes the engagement score posts are ordered by in the home feed.
package ranking

import "math"

// Counters are the denormalized engagement counters of a post.
type Counters struct {
	Likes    int64 `json:"likeCount"`
	Comments int64 `json:"commentCount"`
	Shares   int64 `json:"shareCount"`
	Views    int64 `json:"viewCount"`
}

// Weights of the like, comment and share ratios in the score.
type Weights struct {
	Like    float64
	Comment float64
	Share   float64
}

var DefaultWeights = Weights{
	Like:    27,
	Comment: 36,
	Share:   36,
}

func (w Weights) total() float64 {
	return w.Like + w.Comment + w.Share
}

// Score is the weighted mean of the like/view, comment/view and share/view ratios.
// It is 0 for posts without views and whenever the arithmetic degenerates.
func Score(c Counters, w Weights) float64 {
	if c.Views <= 0 {
		return 0
	}

	views := float64(c.Views)
	weighted := w.Like*(float64(c.Likes)/views) +
		w.Comment*(float64(c.Comments)/views) +
		w.Share*(float64(c.Shares)/views)

	score := weighted / w.total()
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return score
}
