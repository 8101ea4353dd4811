package generate

import (
	"fmt"
	"strconv"
	"strings"

	"careerforge-backend/internal/contract"
)

// Prompt builders are pure: the same structured input always yields the same
// prompt string. All input fields are embedded verbatim.

func resumePrompt(in contract.GenerateResumeInput) string {
	var sb strings.Builder
	sb.WriteString("You are a professional resume writer. Write a polished resume as a clean HTML fragment ")
	sb.WriteString("(use only <h1>, <h2>, <p>, <ul>, <li>, <strong> tags; no <html> or <body>, no markdown, no code fences).\n\n")
	fmt.Fprintf(&sb, "Full name: %s\n", in.FullName)
	fmt.Fprintf(&sb, "Target job title: %s\n", in.JobTitle)
	if in.Summary != "" {
		fmt.Fprintf(&sb, "Professional summary (rewrite and improve): %s\n", in.Summary)
	}
	fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(in.Skills, ", "))
	if len(in.Experience) > 0 {
		sb.WriteString("Work experience:\n")
		for _, exp := range in.Experience {
			fmt.Fprintf(&sb, "- %s at %s (%s): %s\n", exp.Title, exp.Company, exp.Duration, exp.Description)
		}
	}
	if len(in.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range in.Education {
			fmt.Fprintf(&sb, "- %s, %s (%s)\n", edu.Degree, edu.School, edu.Year)
		}
	}
	sb.WriteString("\nKeep it to one page, achievement-oriented, with strong action verbs. Output the HTML fragment only.")
	return sb.String()
}

func coverLetterPrompt(in contract.GenerateCoverLetterInput) string {
	var sb strings.Builder
	sb.WriteString("You are a professional career coach. Write a compelling cover letter as a clean HTML fragment ")
	sb.WriteString("(<p> paragraphs only; no <html> or <body>, no markdown, no code fences).\n\n")
	fmt.Fprintf(&sb, "Applicant: %s\n", in.FullName)
	fmt.Fprintf(&sb, "Applying for: %s at %s\n", in.JobTitle, in.Company)
	if in.HiringManager != "" {
		fmt.Fprintf(&sb, "Address it to: %s\n", in.HiringManager)
	}
	fmt.Fprintf(&sb, "Job description:\n%s\n", in.JobDescription)
	if len(in.Highlights) > 0 {
		sb.WriteString("Highlights to work in:\n")
		for _, h := range in.Highlights {
			fmt.Fprintf(&sb, "- %s\n", h)
		}
	}
	sb.WriteString("\nThree to four paragraphs, confident but not boastful. Output the HTML fragment only.")
	return sb.String()
}

func optimizePrompt(in contract.OptimizeResumeInput) string {
	var sb strings.Builder
	sb.WriteString("You are a resume analysis engine. Compare the resume against the job description ")
	sb.WriteString("and respond with JSON only, matching this schema exactly:\n")
	sb.WriteString(`{"matchScore": <0-100>, "missingSkills": ["..."], "suggestions": ["..."], "optimizedContent": "<improved resume HTML fragment>"}` + "\n\n")
	fmt.Fprintf(&sb, "Resume:\n%s\n\nJob description:\n%s\n", in.Content, in.JobDescription)
	sb.WriteString("\nNever omit keys. suggestions must contain at least one item. No markdown.")
	return sb.String()
}

func jobExtractionPrompt(pageText string) string {
	var sb strings.Builder
	sb.WriteString("You are a job-posting extraction engine. Analyze the page text from a job posting, ")
	sb.WriteString("ignore navigation, footers and unrelated listings, and respond with JSON only, matching this schema exactly:\n")
	sb.WriteString(`{"companyName": "...", "roleTitle": "...", "location": "...", "description": "...", "techStack": ["..."], "salaryRange": "..."}` + "\n\n")
	sb.WriteString("Use an empty string for fields the page does not state. Do not guess.\n\n")
	fmt.Fprintf(&sb, "Page text:\n%s\n", pageText)
	return sb.String()
}

func interviewQuestionsPrompt(in contract.InterviewGenerateInput, count int) string {
	var sb strings.Builder
	sb.WriteString("You are an experienced interviewer. Respond with JSON only, matching this schema exactly:\n")
	sb.WriteString(`{"questions": ["..."]}` + "\n\n")
	fmt.Fprintf(&sb, "Write %s interview questions for the role of %s.\n", strconv.Itoa(count), in.JobTitle)
	if in.JobDescription != "" {
		fmt.Fprintf(&sb, "Job description:\n%s\n", in.JobDescription)
	}
	sb.WriteString("Mix behavioral and role-specific technical questions. No markdown.")
	return sb.String()
}

func evaluationPrompt(in contract.InterviewEvaluateInput) string {
	var sb strings.Builder
	sb.WriteString("You are an interview coach evaluating a candidate's answer. Respond with JSON only, matching this schema exactly:\n")
	sb.WriteString(`{"score": <0-10>, "strengths": ["..."], "improvements": ["..."], "suggestedAnswer": "..."}` + "\n\n")
	fmt.Fprintf(&sb, "Question: %s\n\nCandidate's answer: %s\n", in.Question, in.Answer)
	sb.WriteString("\nBe specific and constructive. Never omit keys. No markdown.")
	return sb.String()
}

func linkedInPrompt(in contract.LinkedInOptimizeInput) string {
	var sb strings.Builder
	sb.WriteString("You are a LinkedIn profile expert. Rewrite the profile sections below for recruiter appeal ")
	sb.WriteString("and respond with JSON only, matching this schema exactly:\n")
	sb.WriteString(`{"headline": "...", "about": "...", "experienceBullets": ["..."]}` + "\n\n")
	fmt.Fprintf(&sb, "Current headline: %s\n", in.Headline)
	if in.About != "" {
		fmt.Fprintf(&sb, "Current about section:\n%s\n", in.About)
	}
	if len(in.Experience) > 0 {
		sb.WriteString("Current experience bullets:\n")
		for _, e := range in.Experience {
			fmt.Fprintf(&sb, "- %s\n", e)
		}
	}
	sb.WriteString("\nKeyword-rich but natural. Never omit keys. No markdown.")
	return sb.String()
}
