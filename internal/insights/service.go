// Package insights requests a narrative sales analysis and degrades to fixed
// advice when the completion service fails.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// Fallback texts returned when no usable reply is available.
const (
	FallbackSummary            = "Não foi possível gerar o resumo."
	FallbackTopPerformerAdvice = "Continue o bom trabalho."
	FallbackLowPerformerAdvice = "Tente novas abordagens."
	FallbackTrendAnalysis      = "Dados insuficientes para análise de tendência."
)

var (
	errMissingFields = errors.New("reply is missing required fields")
	errDisabled      = errors.New("insight generator not configured")
)

var timeNow = time.Now

// Insight is the narrative analysis of the sales table.
type Insight struct {
	Summary            string `json:"summary"`
	TrendAnalysis      string `json:"trendAnalysis"`
	TopPerformerAdvice string `json:"topPerformerAdvice"`
	LowPerformerAdvice string `json:"lowPerformerAdvice"`
	// Fallback is set when the texts are the fixed defaults.
	Fallback bool `json:"fallback"`
}

// FallbackInsight returns the fixed defaults.
func FallbackInsight() Insight {
	return Insight{
		Summary:            FallbackSummary,
		TrendAnalysis:      FallbackTrendAnalysis,
		TopPerformerAdvice: FallbackTopPerformerAdvice,
		LowPerformerAdvice: FallbackLowPerformerAdvice,
		Fallback:           true,
	}
}

// Service produces insights. Only one request may be in flight.
type Service interface {
	Generate(ctx context.Context, sales []models.Sale, people []models.Salesperson) (Insight, error)
	Busy() bool
}

type service struct {
	generator Generator
	logg      *logger.Logger
	metrics   *metrics.InsightMetrics
	busy      atomic.Bool
}

// NewService builds the requester. A nil generator makes every request
// return the fallback.
func NewService(generator Generator, logg *logger.Logger, m *metrics.InsightMetrics) (Service, error) {
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &service{generator: generator, logg: logg, metrics: m}, nil
}

func (s *service) Busy() bool {
	return s.busy.Load()
}

// Generate returns a conflict error while another request is running. Any
// other failure is absorbed into the fallback insight.
func (s *service) Generate(ctx context.Context, sales []models.Sale, people []models.Salesperson) (Insight, error) {
	if !s.busy.CompareAndSwap(false, true) {
		s.metrics.Observe(metrics.OutcomeRejected, 0)
		return Insight{}, pkgerrors.New(pkgerrors.CodeConflict, "an insight request is already in progress")
	}
	defer s.busy.Store(false)

	ctx = s.logg.WithField(ctx, "sales_count", len(sales))
	if s.generator == nil {
		s.logg.Error(ctx, "insight request skipped", errDisabled)
		s.metrics.Observe(metrics.OutcomeFallback, 0)
		return FallbackInsight(), nil
	}

	start := timeNow()
	reply, err := s.callGenerator(ctx, BuildPrompt(sales, people))
	elapsed := timeNow().Sub(start)
	if err == nil {
		var insight Insight
		insight, err = parseReply(reply)
		if err == nil {
			s.metrics.Observe(metrics.OutcomeSuccess, elapsed)
			s.logg.Info(s.logg.WithField(ctx, "duration_ms", elapsed.Milliseconds()), "insight generated")
			return insight, nil
		}
	}

	s.logg.Error(ctx, "insight request failed, using fallback", err)
	s.metrics.Observe(metrics.OutcomeFallback, elapsed)
	return FallbackInsight(), nil
}

// callGenerator turns a generator panic into an error so the request still
// gets the fallback.
func (s *service) callGenerator(ctx context.Context, prompt Prompt) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("insight generator panicked: %v", r)
		}
	}()
	return s.generator.Generate(ctx, prompt)
}

func parseReply(reply string) (Insight, error) {
	body := stripFences(reply)
	if body == "" {
		return Insight{}, errors.New("empty reply")
	}
	var insight Insight
	if err := json.Unmarshal([]byte(body), &insight); err != nil {
		return Insight{}, err
	}
	insight.Fallback = false
	if blank(insight.Summary) || blank(insight.TrendAnalysis) ||
		blank(insight.TopPerformerAdvice) || blank(insight.LowPerformerAdvice) {
		return Insight{}, errMissingFields
	}
	return insight, nil
}

// stripFences removes a surrounding Markdown code fence, with or without a
// language tag.
func stripFences(reply string) string {
	body := strings.TrimSpace(reply)
	if !strings.HasPrefix(body, "```") {
		return body
	}
	body = strings.TrimPrefix(body, "```")
	if newline := strings.IndexByte(body, '\n'); newline >= 0 {
		body = body[newline+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
