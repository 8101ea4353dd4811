package contract

import "time"

// Resume is the wire representation of a persisted resume.
type Resume struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CoverLetter has the same shape as Resume but lives in a distinct table.
type CoverLetter struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DocumentInput is the validated input subset for creating a resume or cover
// letter. Any client-supplied owner field is ignored server-side.
type DocumentInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// DocumentUpdate carries the editable fields of a document. Nil means "leave
// unchanged".
type DocumentUpdate struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content"`
}

// ExperienceEntry is one work-history item of the generation wizard form.
type ExperienceEntry struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is one education item of the generation wizard form.
type EducationEntry struct {
	Degree string `json:"degree" validate:"required"`
	School string `json:"school" validate:"required"`
	Year   string `json:"year"`
}

// GenerateResumeInput is the structured form a resume is generated from.
type GenerateResumeInput struct {
	FullName   string            `json:"fullName" validate:"required"`
	JobTitle   string            `json:"jobTitle" validate:"required"`
	Summary    string            `json:"summary"`
	Skills     []string          `json:"skills" validate:"required,min=1,dive,required"`
	Experience []ExperienceEntry `json:"experience" validate:"dive"`
	Education  []EducationEntry  `json:"education" validate:"dive"`
}

// GenerateCoverLetterInput is the structured form a cover letter is generated from.
type GenerateCoverLetterInput struct {
	FullName       string   `json:"fullName" validate:"required"`
	JobTitle       string   `json:"jobTitle" validate:"required"`
	Company        string   `json:"company" validate:"required"`
	HiringManager  string   `json:"hiringManager"`
	JobDescription string   `json:"jobDescription" validate:"required"`
	Highlights     []string `json:"highlights" validate:"dive,required"`
}

// GeneratedDocument is the AI-written HTML fragment returned by generation.
type GeneratedDocument struct {
	Content string `json:"content" validate:"required"`
}

// OptimizeResumeInput asks for a gap analysis of a resume against a job.
type OptimizeResumeInput struct {
	Content        string `json:"content" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// ResumeAnalysis is the optimization result. The degraded fallback payload
// must also satisfy these rules.
type ResumeAnalysis struct {
	MatchScore       int      `json:"matchScore" validate:"gte=0,lte=100"`
	MissingSkills    []string `json:"missingSkills"`
	Suggestions      []string `json:"suggestions" validate:"required,min=1"`
	OptimizedContent string   `json:"optimizedContent"`
}

// JobFetchInput names the posting URL to extract structured data from.
type JobFetchInput struct {
	URL string `json:"url" validate:"required,url"`
}

// JobPosting is the structured job info extracted from a posting page.
type JobPosting struct {
	CompanyName string   `json:"companyName"`
	RoleTitle   string   `json:"roleTitle" validate:"required"`
	Location    string   `json:"location"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack"`
	SalaryRange string   `json:"salaryRange"`
}

// InterviewGenerateInput asks for mock interview questions.
type InterviewGenerateInput struct {
	JobTitle       string `json:"jobTitle" validate:"required"`
	JobDescription string `json:"jobDescription"`
	Count          int    `json:"count" validate:"omitempty,min=1,max=20"`
}

// InterviewQuestions is a non-empty list of generated questions.
type InterviewQuestions struct {
	Questions []string `json:"questions" validate:"required,min=1,dive,required"`
}

// InterviewEvaluateInput submits one answer for evaluation.
type InterviewEvaluateInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// InterviewEvaluation is the feedback on one answer.
type InterviewEvaluation struct {
	Score           int      `json:"score" validate:"gte=0,lte=10"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	SuggestedAnswer string   `json:"suggestedAnswer"`
}

// LinkedInOptimizeInput carries the current profile sections.
type LinkedInOptimizeInput struct {
	Headline   string   `json:"headline" validate:"required"`
	About      string   `json:"about"`
	Experience []string `json:"experience" validate:"dive,required"`
}

// LinkedInProfile is the rewritten profile.
type LinkedInProfile struct {
	Headline          string   `json:"headline" validate:"required"`
	About             string   `json:"about"`
	ExperienceBullets []string `json:"experienceBullets"`
}

// StripeIntentInput optionally overrides the premium price.
type StripeIntentInput struct {
	AmountCents int64  `json:"amountCents" validate:"omitempty,gte=100"`
	Currency    string `json:"currency" validate:"omitempty,len=3"`
}

// StripeIntent is the created payment intent handed back to the client SDK.
type StripeIntent struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	ClientSecret    string `json:"clientSecret" validate:"required"`
}

// StripeVerifyInput asks the server to confirm an intent with the provider.
type StripeVerifyInput struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

// PayPalOrder is the created order plus the approval redirect.
type PayPalOrder struct {
	OrderID    string `json:"orderId" validate:"required"`
	ApproveURL string `json:"approveUrl"`
}

// PayPalCaptureInput asks the server to capture an approved order.
type PayPalCaptureInput struct {
	OrderID string `json:"orderId" validate:"required"`
}

// PremiumStatus reports the caller's premium flag after a payment flow.
type PremiumStatus struct {
	Premium bool `json:"premium"`
}

// UserProfile is the authenticated caller's profile.
type UserProfile struct {
	ID           string     `json:"id" validate:"required"`
	Email        string     `json:"email"`
	Premium      bool       `json:"premium"`
	PremiumSince *time.Time `json:"premiumSince,omitempty"`
}

// APIError is the error body every failing route returns.
type APIError struct {
	Message string `json:"message" validate:"required"`
	Field   string `json:"field,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
