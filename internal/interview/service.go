package interview

import (
	"context"
	"errors"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/metrics"
	"careerforge-backend/internal/shared/telemetry"
)

// Service generates mock interview questions and scores candidate answers.
type Service struct {
	Gen *generate.Adapter
}

func NewService(gen *generate.Adapter) *Service {
	return &Service{Gen: gen}
}

func (s *Service) Questions(ctx context.Context, in contract.InterviewGenerateInput) (contract.InterviewQuestions, error) {
	out, err := s.Gen.InterviewQuestions(ctx, in)
	if err != nil {
		if errors.Is(err, llm.ErrMalformed) {
			telemetry.Error("interview.generate.degraded", map[string]any{"error": err.Error()})
			metrics.IncGenerationDegraded()
			return generate.DegradedQuestions(in), nil
		}
		return contract.InterviewQuestions{}, err
	}
	return out, nil
}

func (s *Service) Evaluate(ctx context.Context, in contract.InterviewEvaluateInput) (contract.InterviewEvaluation, error) {
	out, err := s.Gen.EvaluateAnswer(ctx, in)
	if err != nil {
		if errors.Is(err, llm.ErrMalformed) {
			telemetry.Error("interview.evaluate.degraded", map[string]any{"error": err.Error()})
			metrics.IncGenerationDegraded()
			return generate.DegradedEvaluation(), nil
		}
		return contract.InterviewEvaluation{}, err
	}
	return out, nil
}
