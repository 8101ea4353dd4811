package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/llm"
)

type stubLLM struct {
	lastPrompt string
	text       string
	jsonOut    string
	err        error
}

func (s *stubLLM) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.text, s.err
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string) ([]byte, error) {
	s.lastPrompt = prompt
	return []byte(s.jsonOut), s.err
}

func TestOptimizeClampsScoreAndBackfillsSuggestions(t *testing.T) {
	stub := &stubLLM{jsonOut: `{"matchScore": 140, "missingSkills": [], "suggestions": []}`}
	adapter := NewAdapter(stub)

	out, err := adapter.Optimize(context.Background(), contract.OptimizeResumeInput{
		Content:        "resume",
		JobDescription: "job",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, out.MatchScore)
	assert.NotEmpty(t, out.Suggestions)
}

func TestOptimizeMalformedSurfacesErrMalformed(t *testing.T) {
	stub := &stubLLM{jsonOut: "I'm sorry, I can't help with that."}
	adapter := NewAdapter(stub)

	_, err := adapter.Optimize(context.Background(), contract.OptimizeResumeInput{Content: "r", JobDescription: "j"})
	assert.True(t, errors.Is(err, llm.ErrMalformed), "expected ErrMalformed, got %v", err)
}

func TestOptimizeAcceptsFencedJSON(t *testing.T) {
	stub := &stubLLM{jsonOut: "```json\n{\"matchScore\": 72, \"suggestions\": [\"add keywords\"]}\n```"}
	adapter := NewAdapter(stub)

	out, err := adapter.Optimize(context.Background(), contract.OptimizeResumeInput{Content: "r", JobDescription: "j"})
	require.NoError(t, err)
	assert.Equal(t, 72, out.MatchScore)
}

func TestInterviewQuestionsDefaultsCount(t *testing.T) {
	stub := &stubLLM{jsonOut: `{"questions": ["q1"]}`}
	adapter := NewAdapter(stub)

	_, err := adapter.InterviewQuestions(context.Background(), contract.InterviewGenerateInput{JobTitle: "SRE"})
	require.NoError(t, err)
	assert.Contains(t, stub.lastPrompt, "5", "prompt should request the default question count")
	assert.Contains(t, stub.lastPrompt, "SRE")
}

func TestEvaluateAnswerClampsScore(t *testing.T) {
	stub := &stubLLM{jsonOut: `{"score": -3, "strengths": [], "improvements": [], "suggestedAnswer": ""}`}
	adapter := NewAdapter(stub)

	out, err := adapter.EvaluateAnswer(context.Background(), contract.InterviewEvaluateInput{Question: "q", Answer: "a"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Score)
}

func TestLinkedInBackfillsHeadline(t *testing.T) {
	stub := &stubLLM{jsonOut: `{"headline": "", "about": "rewritten", "experienceBullets": []}`}
	adapter := NewAdapter(stub)

	out, err := adapter.LinkedIn(context.Background(), contract.LinkedInOptimizeInput{Headline: "Go engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Go engineer", out.Headline)
}

func TestResumePromptIsDeterministic(t *testing.T) {
	in := contract.GenerateResumeInput{
		FullName: "Ada Lovelace",
		JobTitle: "Backend Engineer",
		Skills:   []string{"Go", "Postgres"},
	}
	a := resumePrompt(in)
	b := resumePrompt(in)
	assert.Equal(t, a, b)
	assert.True(t, strings.Contains(a, "Ada Lovelace"))
	assert.True(t, strings.Contains(a, "Go"))
}

func TestDegradedPayloadsSatisfyContract(t *testing.T) {
	assert.NoError(t, contract.Object[contract.ResumeAnalysis]()(DegradedAnalysis()))
	assert.NoError(t, contract.Object[contract.InterviewEvaluation]()(DegradedEvaluation()))
	assert.NoError(t, contract.Object[contract.InterviewQuestions]()(DegradedQuestions(contract.InterviewGenerateInput{JobTitle: "PM"})))
	assert.NoError(t, contract.Object[contract.LinkedInProfile]()(DegradedLinkedIn(contract.LinkedInOptimizeInput{Headline: "h"})))
}
