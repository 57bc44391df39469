// Package analysis implements the financial analytics and scorecard engine
// for merchant-cash-advance underwriting. The engine is a pure function of
// its input: it receives a deal's extracted bank transactions in memory,
// aggregates them into per-category and per-month metrics, scores four risk
// sections, and composes an overall scorecard with a funding verdict. It
// performs no I/O, holds no state between calls, and never mutates its
// input, so concurrent analyses need no coordination.
package analysis

import (
	"errors"

	"mca-underwriting/internal/config"
	"mca-underwriting/internal/models"
)

var (
	// ErrEmptyInput is returned for a zero-transaction analysis request.
	// Callers show a "no data" state rather than a failed analysis.
	ErrEmptyInput = errors.New("no transactions to analyze")

	// ErrInvalidTransaction is returned when a record is malformed:
	// negative amount, missing date, or unknown type. The record is
	// rejected, never coerced.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrIncompleteMetrics is returned when a section score cannot be
	// computed. The whole scorecard fails; consumers assume all four
	// sections are always present.
	ErrIncompleteMetrics = errors.New("incomplete metrics")
)

// Engine computes metrics and scorecards from transaction sets. The scoring
// weights and red-flag thresholds are injected at construction so every
// computation is deterministic and reentrant, and tests can override policy
// per deal.
type Engine struct {
	weights    config.ScoringWeights
	thresholds config.RedFlagThresholds
}

// NewEngine creates an engine with the given scoring policy. Weights are
// normalized so they always sum to 1.
func NewEngine(cfg config.ScoringConfig) *Engine {
	return &Engine{
		weights:    cfg.Weights.Normalized(),
		thresholds: cfg.Thresholds,
	}
}

// Analyze runs the full pipeline over one deal's transactions and returns
// the aggregated metrics and the composed scorecard.
func (e *Engine) Analyze(transactions []models.Transaction) (*models.AggregatedMetrics, *models.Scorecard, error) {
	metrics, err := e.ComputeMetrics(transactions)
	if err != nil {
		return nil, nil, err
	}

	scorecard, err := e.ComposeScorecard(metrics)
	if err != nil {
		return nil, nil, err
	}

	return metrics, scorecard, nil
}
