package apiclient

import (
	"context"

	"careerforge-backend/internal/contract"
)

func idParam(id string) map[string]string { return map[string]string{"id": id} }

// ListResumes returns the caller's resumes.
func (c *Client) ListResumes(ctx context.Context) ([]contract.Resume, error) {
	var out []contract.Resume
	if _, err := c.query(ctx, contract.OpResumesList, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetResume returns the resume, or found=false when it does not exist.
func (c *Client) GetResume(ctx context.Context, id string) (contract.Resume, bool, error) {
	var out contract.Resume
	found, err := c.query(ctx, contract.OpResumesGet, idParam(id), &out)
	return out, found, err
}

func (c *Client) CreateResume(ctx context.Context, in contract.DocumentInput) (contract.Resume, error) {
	var out contract.Resume
	err := c.mutate(ctx, contract.OpResumesCreate, nil, in, &out)
	return out, err
}

func (c *Client) UpdateResume(ctx context.Context, id string, in contract.DocumentUpdate) (contract.Resume, error) {
	var out contract.Resume
	err := c.mutate(ctx, contract.OpResumesUpdate, idParam(id), in, &out)
	return out, err
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.mutate(ctx, contract.OpResumesDelete, idParam(id), nil, nil)
}

func (c *Client) GenerateResume(ctx context.Context, in contract.GenerateResumeInput) (contract.GeneratedDocument, error) {
	var out contract.GeneratedDocument
	err := c.mutate(ctx, contract.OpResumesGenerate, nil, in, &out)
	return out, err
}

func (c *Client) OptimizeResume(ctx context.Context, in contract.OptimizeResumeInput) (contract.ResumeAnalysis, error) {
	var out contract.ResumeAnalysis
	err := c.mutate(ctx, contract.OpResumesOptimize, nil, in, &out)
	return out, err
}

// ListCoverLetters returns the caller's cover letters.
func (c *Client) ListCoverLetters(ctx context.Context) ([]contract.CoverLetter, error) {
	var out []contract.CoverLetter
	if _, err := c.query(ctx, contract.OpCoverLettersList, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCoverLetter returns the cover letter, or found=false when it does not exist.
func (c *Client) GetCoverLetter(ctx context.Context, id string) (contract.CoverLetter, bool, error) {
	var out contract.CoverLetter
	found, err := c.query(ctx, contract.OpCoverLettersGet, idParam(id), &out)
	return out, found, err
}

func (c *Client) CreateCoverLetter(ctx context.Context, in contract.DocumentInput) (contract.CoverLetter, error) {
	var out contract.CoverLetter
	err := c.mutate(ctx, contract.OpCoverLettersCreate, nil, in, &out)
	return out, err
}

func (c *Client) UpdateCoverLetter(ctx context.Context, id string, in contract.DocumentUpdate) (contract.CoverLetter, error) {
	var out contract.CoverLetter
	err := c.mutate(ctx, contract.OpCoverLettersUpdate, idParam(id), in, &out)
	return out, err
}

func (c *Client) DeleteCoverLetter(ctx context.Context, id string) error {
	return c.mutate(ctx, contract.OpCoverLettersDelete, idParam(id), nil, nil)
}

func (c *Client) GenerateCoverLetter(ctx context.Context, in contract.GenerateCoverLetterInput) (contract.GeneratedDocument, error) {
	var out contract.GeneratedDocument
	err := c.mutate(ctx, contract.OpCoverLettersGenerate, nil, in, &out)
	return out, err
}

// FetchJob extracts structured data from a job posting URL.
func (c *Client) FetchJob(ctx context.Context, in contract.JobFetchInput) (contract.JobPosting, error) {
	var out contract.JobPosting
	err := c.mutate(ctx, contract.OpJobsFetch, nil, in, &out)
	return out, err
}

func (c *Client) GenerateInterviewQuestions(ctx context.Context, in contract.InterviewGenerateInput) (contract.InterviewQuestions, error) {
	var out contract.InterviewQuestions
	err := c.mutate(ctx, contract.OpInterviewGenerate, nil, in, &out)
	return out, err
}

func (c *Client) EvaluateInterviewAnswer(ctx context.Context, in contract.InterviewEvaluateInput) (contract.InterviewEvaluation, error) {
	var out contract.InterviewEvaluation
	err := c.mutate(ctx, contract.OpInterviewEvaluate, nil, in, &out)
	return out, err
}

func (c *Client) OptimizeLinkedIn(ctx context.Context, in contract.LinkedInOptimizeInput) (contract.LinkedInProfile, error) {
	var out contract.LinkedInProfile
	err := c.mutate(ctx, contract.OpLinkedInOptimize, nil, in, &out)
	return out, err
}

func (c *Client) CreateStripeIntent(ctx context.Context, in contract.StripeIntentInput) (contract.StripeIntent, error) {
	var out contract.StripeIntent
	err := c.mutate(ctx, contract.OpStripeCreateIntent, nil, in, &out)
	return out, err
}

func (c *Client) VerifyStripePayment(ctx context.Context, in contract.StripeVerifyInput) (contract.PremiumStatus, error) {
	var out contract.PremiumStatus
	err := c.mutate(ctx, contract.OpStripeVerify, nil, in, &out)
	return out, err
}

func (c *Client) CreatePayPalOrder(ctx context.Context) (contract.PayPalOrder, error) {
	var out contract.PayPalOrder
	err := c.mutate(ctx, contract.OpPayPalCreateOrder, nil, nil, &out)
	return out, err
}

func (c *Client) CapturePayPalOrder(ctx context.Context, in contract.PayPalCaptureInput) (contract.PremiumStatus, error) {
	var out contract.PremiumStatus
	err := c.mutate(ctx, contract.OpPayPalCaptureOrder, nil, in, &out)
	return out, err
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context) (contract.UserProfile, error) {
	var out contract.UserProfile
	if _, err := c.query(ctx, contract.OpUsersMe, nil, &out); err != nil {
		return contract.UserProfile{}, err
	}
	return out, nil
}
