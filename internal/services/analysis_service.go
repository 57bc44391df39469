package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"mca-underwriting/internal/analysis"
	"mca-underwriting/internal/models"
	"mca-underwriting/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNoTransactions        = errors.New("deal has no transactions to analyze")
	ErrAnalysisNotComputed   = errors.New("deal has not been analyzed yet")
	ErrUnscorableTransaction = errors.New("transaction set contains an unscorable record")
)

type analysisService struct {
	engine          *analysis.Engine
	dealRepo        repositories.DealRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metricsRepo     repositories.DealMetricsRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewAnalysisService(
	engine *analysis.Engine,
	dealRepo repositories.DealRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metricsRepo repositories.DealMetricsRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnalysisServiceInterface {
	return &analysisService{
		engine:          engine,
		dealRepo:        dealRepo,
		transactionRepo: transactionRepo,
		metricsRepo:     metricsRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// AnalyzeDeal runs the scoring engine over a deal's transaction history and
// persists the resulting snapshot. The snapshot replaces any previous run.
func (s *analysisService) AnalyzeDeal(requestorID, dealID uuid.UUID, isAdmin bool) (*models.AggregatedMetrics, *models.Scorecard, error) {
	deal, err := s.authorizeDeal(requestorID, dealID, isAdmin)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := s.transactionRepo.GetByDealID(deal.ID)
	if err != nil {
		s.logger.Error("failed to load transactions for analysis",
			"deal_id", deal.ID,
			"error", err)
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(transactions) == 0 {
		s.metrics.IncrementCounter("analysis.failed", map[string]string{"reason": "no_transactions"})
		return nil, nil, ErrNoTransactions
	}

	started := time.Now()

	metrics, scorecard, err := s.engine.Analyze(transactions)
	if err != nil {
		reason := "engine_error"
		switch {
		case errors.Is(err, analysis.ErrEmptyInput):
			err = ErrNoTransactions
			reason = "no_transactions"
		case errors.Is(err, analysis.ErrInvalidTransaction):
			err = fmt.Errorf("%w: %v", ErrUnscorableTransaction, err)
			reason = "invalid_record"
		}
		s.metrics.IncrementCounter("analysis.failed", map[string]string{"reason": reason})
		s.logger.Error("analysis failed",
			"deal_id", deal.ID,
			"reason", reason,
			"error", err)
		return nil, nil, err
	}

	snapshot := &models.DealMetrics{
		DealID:       deal.ID,
		Metrics:      models.MetricsDocument(*metrics),
		Scorecard:    models.ScorecardDocument(*scorecard),
		OverallScore: scorecard.OverallScore,
		RiskTier:     scorecard.RiskTier,
		Verdict:      scorecard.Verdict,
		ComputedAt:   time.Now().UTC(),
	}

	if err := s.metricsRepo.Upsert(snapshot); err != nil {
		s.logger.Error("failed to persist analysis snapshot",
			"deal_id", deal.ID,
			"error", err)
		return nil, nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	s.observeRun(deal.ID, metrics, scorecard, time.Since(started), len(transactions))

	return metrics, scorecard, nil
}

// GetSnapshot returns the persisted result of the last analysis run
func (s *analysisService) GetSnapshot(requestorID, dealID uuid.UUID, isAdmin bool) (*models.DealMetrics, error) {
	deal, err := s.authorizeDeal(requestorID, dealID, isAdmin)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.metricsRepo.GetByDealID(deal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrMetricsNotFound) {
			return nil, ErrAnalysisNotComputed
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return snapshot, nil
}

func (s *analysisService) authorizeDeal(requestorID, dealID uuid.UUID, isAdmin bool) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(dealID)
	if err != nil {
		if errors.Is(err, repositories.ErrDealNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	if deal.UnderwriterID != requestorID && !isAdmin {
		s.logger.Warn("unauthorized analysis request",
			"requestor_id", requestorID,
			"deal_id", dealID,
			"owner_id", deal.UnderwriterID)
		return nil, ErrUnauthorized
	}

	return deal, nil
}

func (s *analysisService) observeRun(dealID uuid.UUID, metrics *models.AggregatedMetrics, scorecard *models.Scorecard, elapsed time.Duration, txnCount int) {
	s.metrics.IncrementCounter("analysis.completed", map[string]string{
		"verdict":   scorecard.Verdict,
		"risk_tier": scorecard.RiskTier,
	})
	s.metrics.RecordProcessingTime("analysis.duration", elapsed)
	s.metrics.RecordGauge("analysis.overall_score", scorecard.OverallScore, nil)
	s.metrics.RecordGauge("analysis.transaction_count", float64(txnCount), nil)

	for _, flag := range scorecard.RedFlags {
		s.metrics.IncrementCounter("analysis.red_flag", map[string]string{
			"type":     flag.Type,
			"severity": flag.Severity,
		})
	}

	s.logger.Info("deal analyzed",
		"deal_id", dealID,
		"months_analyzed", metrics.MonthsAnalyzed,
		"transaction_count", txnCount,
		"overall_score", strconv.FormatFloat(scorecard.OverallScore, 'f', 2, 64),
		"risk_tier", scorecard.RiskTier,
		"verdict", scorecard.Verdict,
		"red_flags", len(scorecard.RedFlags),
		"duration_ms", elapsed.Milliseconds())
}
