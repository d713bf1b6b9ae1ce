package ranking

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type scoreWriter interface {
	SetScore(ctx context.Context, id string, score float64) error
}

// Rescorer persists a post's score after one of its counters moved. The counter update and
// the score write are separate steps; a failed score write is logged and counted, the stale
// score gets repaired by the next reconcile run.
type Rescorer struct {
	writer   scoreWriter
	weights  Weights
	failures prometheus.Counter
}

func NewRescorer(writer scoreWriter, weights Weights, failures prometheus.Counter) *Rescorer {
	return &Rescorer{
		writer:   writer,
		weights:  weights,
		failures: failures,
	}
}

func (r *Rescorer) Weights() Weights {
	return r.weights
}

// Rescore computes the score for c, stores it and returns it.
func (r *Rescorer) Rescore(ctx context.Context, postID string, c Counters) float64 {
	score := Score(c, r.weights)
	if err := r.writer.SetScore(ctx, postID, score); err != nil {
		log.Errorf("rescore post [%s]: %s", postID, err)
		r.failures.Inc()
	}
	return score
}
