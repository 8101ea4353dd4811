// Package generate isolates prompt construction and AI-provider invocation
// behind operation-specific functions. Prompt construction is deterministic;
// the provider call is not, and JSON-expecting results may come back malformed
// — those surface as llm.ErrMalformed for the caller to degrade or propagate.
package generate

import (
	"context"
	"time"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/metrics"
)

const defaultQuestionCount = 5

// Adapter runs generation operations against an llm.Client.
type Adapter struct {
	LLM llm.Client
}

// NewAdapter constructs an Adapter.
func NewAdapter(client llm.Client) *Adapter {
	return &Adapter{LLM: client}
}

// Resume writes a resume HTML fragment from the structured form input.
func (a *Adapter) Resume(ctx context.Context, in contract.GenerateResumeInput) (string, error) {
	return a.generateText(ctx, resumePrompt(in))
}

// CoverLetter writes a cover letter HTML fragment.
func (a *Adapter) CoverLetter(ctx context.Context, in contract.GenerateCoverLetterInput) (string, error) {
	return a.generateText(ctx, coverLetterPrompt(in))
}

func (a *Adapter) generateText(ctx context.Context, prompt string) (string, error) {
	metrics.IncGenerationStarted()
	start := time.Now()
	out, err := a.LLM.GenerateText(ctx, prompt)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return "", err
	}
	metrics.IncGenerationCompleted()
	return out, nil
}

func (a *Adapter) generateJSON(ctx context.Context, prompt string) ([]byte, error) {
	metrics.IncGenerationStarted()
	start := time.Now()
	raw, err := a.LLM.GenerateJSON(ctx, prompt)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return nil, err
	}
	metrics.IncGenerationCompleted()
	return raw, nil
}

// Optimize analyzes a resume against a job description.
func (a *Adapter) Optimize(ctx context.Context, in contract.OptimizeResumeInput) (contract.ResumeAnalysis, error) {
	raw, err := a.generateJSON(ctx, optimizePrompt(in))
	if err != nil {
		return contract.ResumeAnalysis{}, err
	}
	var out contract.ResumeAnalysis
	if err := llm.DecodeJSON(raw, &out); err != nil {
		return contract.ResumeAnalysis{}, err
	}
	out.MatchScore = clamp(out.MatchScore, 0, 100)
	if len(out.Suggestions) == 0 {
		out.Suggestions = []string{"Tailor your resume wording to the job description."}
	}
	return out, nil
}

// ExtractJob pulls structured job info out of posting page text.
func (a *Adapter) ExtractJob(ctx context.Context, pageText string) (contract.JobPosting, error) {
	raw, err := a.generateJSON(ctx, jobExtractionPrompt(pageText))
	if err != nil {
		return contract.JobPosting{}, err
	}
	var out contract.JobPosting
	if err := llm.DecodeJSON(raw, &out); err != nil {
		return contract.JobPosting{}, err
	}
	return out, nil
}

// InterviewQuestions generates mock interview questions.
func (a *Adapter) InterviewQuestions(ctx context.Context, in contract.InterviewGenerateInput) (contract.InterviewQuestions, error) {
	count := in.Count
	if count <= 0 {
		count = defaultQuestionCount
	}
	raw, err := a.generateJSON(ctx, interviewQuestionsPrompt(in, count))
	if err != nil {
		return contract.InterviewQuestions{}, err
	}
	var out contract.InterviewQuestions
	if err := llm.DecodeJSON(raw, &out); err != nil {
		return contract.InterviewQuestions{}, err
	}
	return out, nil
}

// EvaluateAnswer scores one interview answer.
func (a *Adapter) EvaluateAnswer(ctx context.Context, in contract.InterviewEvaluateInput) (contract.InterviewEvaluation, error) {
	raw, err := a.generateJSON(ctx, evaluationPrompt(in))
	if err != nil {
		return contract.InterviewEvaluation{}, err
	}
	var out contract.InterviewEvaluation
	if err := llm.DecodeJSON(raw, &out); err != nil {
		return contract.InterviewEvaluation{}, err
	}
	out.Score = clamp(out.Score, 0, 10)
	return out, nil
}

// LinkedIn rewrites profile sections.
func (a *Adapter) LinkedIn(ctx context.Context, in contract.LinkedInOptimizeInput) (contract.LinkedInProfile, error) {
	raw, err := a.generateJSON(ctx, linkedInPrompt(in))
	if err != nil {
		return contract.LinkedInProfile{}, err
	}
	var out contract.LinkedInProfile
	if err := llm.DecodeJSON(raw, &out); err != nil {
		return contract.LinkedInProfile{}, err
	}
	if out.Headline == "" {
		out.Headline = in.Headline
	}
	return out, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
