// Package server builds the HTTP router. Routes are not declared here: the
// contract registry is walked and each operation is bound to its handler, so
// an operation without a handler fails loudly at startup instead of 404ing in
// production.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/coverletters"
	"careerforge-backend/internal/identity"
	"careerforge-backend/internal/interview"
	"careerforge-backend/internal/jobs"
	"careerforge-backend/internal/linkedin"
	"careerforge-backend/internal/payments"
	"careerforge-backend/internal/resumes"
	"careerforge-backend/internal/shared/metrics"
	"careerforge-backend/internal/shared/server/middleware"
	"careerforge-backend/internal/shared/server/respond"
	"careerforge-backend/internal/users"
)

// RouterDeps carries everything the router binds together.
type RouterDeps struct {
	Env              string
	CORSAllowOrigins []string
	Verifier         identity.Verifier
	Ops              *contract.Registry

	Resumes      *resumes.Handler
	CoverLetters *coverletters.Handler
	Jobs         *jobs.Handler
	Interview    *interview.Handler
	LinkedIn     *linkedin.Handler
	Payments     *payments.Handler
	Users        *users.Handler
}

// NewRouter builds the Gin engine with all middleware and every contract
// operation bound. Panics if an operation has no handler.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.CORSAllowOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	handlers := map[string]gin.HandlerFunc{
		contract.OpResumesList:     deps.Resumes.List,
		contract.OpResumesGet:      deps.Resumes.Get,
		contract.OpResumesCreate:   deps.Resumes.Create,
		contract.OpResumesUpdate:   deps.Resumes.Update,
		contract.OpResumesDelete:   deps.Resumes.Delete,
		contract.OpResumesGenerate: deps.Resumes.Generate,
		contract.OpResumesOptimize: deps.Resumes.Optimize,

		contract.OpCoverLettersList:     deps.CoverLetters.List,
		contract.OpCoverLettersGet:      deps.CoverLetters.Get,
		contract.OpCoverLettersCreate:   deps.CoverLetters.Create,
		contract.OpCoverLettersUpdate:   deps.CoverLetters.Update,
		contract.OpCoverLettersDelete:   deps.CoverLetters.Delete,
		contract.OpCoverLettersGenerate: deps.CoverLetters.Generate,

		contract.OpJobsFetch:         deps.Jobs.Fetch,
		contract.OpInterviewGenerate: deps.Interview.Generate,
		contract.OpInterviewEvaluate: deps.Interview.Evaluate,
		contract.OpLinkedInOptimize:  deps.LinkedIn.Optimize,

		contract.OpStripeCreateIntent: deps.Payments.CreateStripeIntent,
		contract.OpStripeVerify:       deps.Payments.VerifyStripe,
		contract.OpPayPalCreateOrder:  deps.Payments.CreatePayPalOrder,
		contract.OpPayPalCaptureOrder: deps.Payments.CapturePayPalOrder,

		contract.OpUsersMe: deps.Users.Me,
	}

	authed := r.Group("", middleware.Auth(deps.Verifier))
	for _, op := range deps.Ops.Operations() {
		h, ok := handlers[op.Name]
		if !ok {
			panic(fmt.Sprintf("server: no handler for operation %q", op.Name))
		}
		authed.Handle(op.Method, op.Path, h)
	}

	return r
}

// Addr formats the listen address for a port.
func Addr(port string) string {
	return ":" + port
}
