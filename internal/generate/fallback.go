package generate

import "careerforge-backend/internal/contract"

// Degraded payloads returned when the model's JSON cannot be parsed. Each
// satisfies the declared 200 response rule so clients never see a half-shape.

// DegradedAnalysis is the canned optimization result.
func DegradedAnalysis() contract.ResumeAnalysis {
	return contract.ResumeAnalysis{
		MatchScore:    50,
		MissingSkills: []string{},
		Suggestions: []string{
			"We could not complete a detailed analysis. Please try again.",
			"Make sure your resume includes keywords from the job description.",
		},
	}
}

// DegradedQuestions is a generic question set scoped to the requested role.
func DegradedQuestions(in contract.InterviewGenerateInput) contract.InterviewQuestions {
	return contract.InterviewQuestions{
		Questions: []string{
			"Tell me about yourself and why you are interested in the " + in.JobTitle + " role.",
			"Describe a challenging project you worked on and how you handled it.",
			"What are your greatest strengths relevant to this position?",
			"Tell me about a time you disagreed with a teammate. How did you resolve it?",
			"Where do you see yourself in five years?",
		},
	}
}

// DegradedEvaluation is the canned answer feedback.
func DegradedEvaluation() contract.InterviewEvaluation {
	return contract.InterviewEvaluation{
		Score:           5,
		Strengths:       []string{"Your answer was received."},
		Improvements:    []string{"We could not complete a detailed evaluation. Please try again."},
		SuggestedAnswer: "",
	}
}

// DegradedLinkedIn echoes the caller's sections unchanged.
func DegradedLinkedIn(in contract.LinkedInOptimizeInput) contract.LinkedInProfile {
	return contract.LinkedInProfile{
		Headline:          in.Headline,
		About:             in.About,
		ExperienceBullets: in.Experience,
	}
}
