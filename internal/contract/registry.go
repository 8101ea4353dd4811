package contract

import "net/http"

// Operation names. Handlers and clients refer to operations by these.
const (
	OpResumesList     = "resumes.list"
	OpResumesGet      = "resumes.get"
	OpResumesCreate   = "resumes.create"
	OpResumesUpdate   = "resumes.update"
	OpResumesDelete   = "resumes.delete"
	OpResumesGenerate = "resumes.generate"
	OpResumesOptimize = "resumes.optimize"

	OpCoverLettersList     = "coverLetters.list"
	OpCoverLettersGet      = "coverLetters.get"
	OpCoverLettersCreate   = "coverLetters.create"
	OpCoverLettersUpdate   = "coverLetters.update"
	OpCoverLettersDelete   = "coverLetters.delete"
	OpCoverLettersGenerate = "coverLetters.generate"

	OpJobsFetch         = "jobs.fetch"
	OpInterviewGenerate = "interview.generate"
	OpInterviewEvaluate = "interview.evaluate"
	OpLinkedInOptimize  = "linkedin.optimize"

	OpStripeCreateIntent = "payments.stripe.createIntent"
	OpStripeVerify       = "payments.stripe.verify"
	OpPayPalCreateOrder  = "payments.paypal.createOrder"
	OpPayPalCaptureOrder = "payments.paypal.captureOrder"

	OpUsersMe = "users.me"
)

// Default returns the full API contract. Loaded once at process start and
// shared by reference between the router and the client.
func Default() *Registry {
	apiErr := Object[APIError]()

	return NewRegistry(
		Operation{
			Name:      OpResumesList,
			Method:    http.MethodGet,
			Path:      "/api/resumes",
			Responses: map[int]Rule{http.StatusOK: List[Resume]()},
		},
		Operation{
			Name:      OpResumesGet,
			Method:    http.MethodGet,
			Path:      "/api/resumes/:id",
			Responses: map[int]Rule{http.StatusOK: Object[Resume](), http.StatusNotFound: apiErr},
		},
		Operation{
			Name:      OpResumesCreate,
			Method:    http.MethodPost,
			Path:      "/api/resumes",
			Input:     Object[DocumentInput](),
			Responses: map[int]Rule{http.StatusCreated: Object[Resume](), http.StatusBadRequest: apiErr},
		},
		Operation{
			Name:      OpResumesUpdate,
			Method:    http.MethodPut,
			Path:      "/api/resumes/:id",
			Input:     Object[DocumentUpdate](),
			Responses: map[int]Rule{http.StatusOK: Object[Resume](), http.StatusNotFound: apiErr},
		},
		Operation{
			Name:      OpResumesDelete,
			Method:    http.MethodDelete,
			Path:      "/api/resumes/:id",
			Responses: map[int]Rule{http.StatusNoContent: Empty(), http.StatusNotFound: apiErr},
		},
		Operation{
			Name:      OpResumesGenerate,
			Method:    http.MethodPost,
			Path:      "/api/resumes/generate",
			Input:     Object[GenerateResumeInput](),
			Responses: map[int]Rule{http.StatusOK: Object[GeneratedDocument]()},
		},
		Operation{
			Name:      OpResumesOptimize,
			Method:    http.MethodPost,
			Path:      "/api/resumes/optimize",
			Input:     Object[OptimizeResumeInput](),
			Responses: map[int]Rule{http.StatusOK: Object[ResumeAnalysis]()},
		},

		Operation{
			Name:      OpCoverLettersList,
			Method:    http.MethodGet,
			Path:      "/api/cover-letters",
			Responses: map[int]Rule{http.StatusOK: List[CoverLetter]()},
		},
		Operation{
			Name:      OpCoverLettersGet,
			Method:    http.MethodGet,
			Path:      "/api/cover-letters/:id",
			Responses: map[int]Rule{http.StatusOK: Object[CoverLetter](), http.StatusNotFound: apiErr},
		},
		Operation{
			Name:      OpCoverLettersCreate,
			Method:    http.MethodPost,
			Path:      "/api/cover-letters",
			Input:     Object[DocumentInput](),
			Responses: map[int]Rule{http.StatusCreated: Object[CoverLetter](), http.StatusBadRequest: apiErr},
		},
		Operation{
			Name:      OpCoverLettersUpdate,
			Method:    http.MethodPut,
			Path:      "/api/cover-letters/:id",
			Input:     Object[DocumentUpdate](),
			Responses: map[int]Rule{http.StatusOK: Object[CoverLetter](), http.StatusNotFound: apiErr},
		},
		Operation{
			Name:      OpCoverLettersDelete,
			Method:    http.MethodDelete,
			Path:      "/api/cover-letters/:id",
			Responses: map[int]Rule{http.StatusNoContent: Empty(), http.StatusNotFound: apiErr},
		},
		Operation{
			Name:      OpCoverLettersGenerate,
			Method:    http.MethodPost,
			Path:      "/api/cover-letters/generate",
			Input:     Object[GenerateCoverLetterInput](),
			Responses: map[int]Rule{http.StatusOK: Object[GeneratedDocument]()},
		},

		Operation{
			Name:      OpJobsFetch,
			Method:    http.MethodPost,
			Path:      "/api/jobs/fetch",
			Input:     Object[JobFetchInput](),
			Responses: map[int]Rule{http.StatusOK: Object[JobPosting](), http.StatusBadGateway: apiErr},
		},
		Operation{
			Name:      OpInterviewGenerate,
			Method:    http.MethodPost,
			Path:      "/api/interview/generate",
			Input:     Object[InterviewGenerateInput](),
			Responses: map[int]Rule{http.StatusOK: Object[InterviewQuestions]()},
		},
		Operation{
			Name:      OpInterviewEvaluate,
			Method:    http.MethodPost,
			Path:      "/api/interview/evaluate",
			Input:     Object[InterviewEvaluateInput](),
			Responses: map[int]Rule{http.StatusOK: Object[InterviewEvaluation]()},
		},
		Operation{
			Name:      OpLinkedInOptimize,
			Method:    http.MethodPost,
			Path:      "/api/linkedin/optimize",
			Input:     Object[LinkedInOptimizeInput](),
			Responses: map[int]Rule{http.StatusOK: Object[LinkedInProfile]()},
		},

		Operation{
			Name:      OpStripeCreateIntent,
			Method:    http.MethodPost,
			Path:      "/api/payments/stripe/create-intent",
			Input:     Object[StripeIntentInput](),
			Responses: map[int]Rule{http.StatusOK: Object[StripeIntent]()},
		},
		Operation{
			Name:      OpStripeVerify,
			Method:    http.MethodPost,
			Path:      "/api/payments/stripe/verify",
			Input:     Object[StripeVerifyInput](),
			Responses: map[int]Rule{http.StatusOK: Object[PremiumStatus](), http.StatusBadRequest: apiErr},
		},
		Operation{
			Name:      OpPayPalCreateOrder,
			Method:    http.MethodPost,
			Path:      "/api/payments/paypal/create-order",
			Responses: map[int]Rule{http.StatusOK: Object[PayPalOrder]()},
		},
		Operation{
			Name:      OpPayPalCaptureOrder,
			Method:    http.MethodPost,
			Path:      "/api/payments/paypal/capture-order",
			Input:     Object[PayPalCaptureInput](),
			Responses: map[int]Rule{http.StatusOK: Object[PremiumStatus](), http.StatusBadRequest: apiErr},
		},

		Operation{
			Name:      OpUsersMe,
			Method:    http.MethodGet,
			Path:      "/api/users/me",
			Responses: map[int]Rule{http.StatusOK: Object[UserProfile]()},
		},
	)
}
