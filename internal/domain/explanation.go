package domain

import (
	"fmt"
	"strings"
)

const MaxExplanationLength = 1000

// ExplanationRequest carries everything an explanation generator needs about a match.
type ExplanationRequest struct {
	Match             Match
	RequesterName     string
	CandidateName     string
	RequesterTeaches  string
	CandidateTeaches  string
	RequesterLearns   string
	CandidateLearns   string
	RequesterLanguage string
	CandidateLanguage string
}

// FallbackExplanation is the deterministic text used when no generator is
// available or it fails.
func FallbackExplanation(req ExplanationRequest) string {
	return fmt.Sprintf(
		"%s teaches %s which matches what you want to learn. "+
			"You teach %s which they want to learn. This creates a balanced skill exchange.",
		req.CandidateName, req.CandidateTeaches, req.RequesterTeaches,
	)
}

// TruncateExplanation caps text at MaxExplanationLength runes, ending with "..." when cut.
func TruncateExplanation(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxExplanationLength {
		return text
	}
	return string(runes[:MaxExplanationLength-3]) + "..."
}

// ExplanationSystemPrompt frames the model for ExplanationPrompt.
const ExplanationSystemPrompt = "You are a helpful assistant that explains skill matches clearly and concisely."

// ExplanationPrompt renders the user prompt sent to a language model.
func ExplanationPrompt(req ExplanationRequest) string {
	var b strings.Builder
	b.WriteString("Generate a concise, friendly explanation (2-3 sentences) for why these two users ")
	b.WriteString("are a good match for skill exchange:\n\n")

	fmt.Fprintf(&b, "User 1 (%s):\n- Teaches: %s\n- Wants to learn: %s\n",
		req.RequesterName, req.RequesterTeaches, req.RequesterLearns)
	if req.RequesterLanguage != "" {
		fmt.Fprintf(&b, "- Preferred language: %s\n", req.RequesterLanguage)
	}
	fmt.Fprintf(&b, "\nUser 2 (%s):\n- Teaches: %s\n- Wants to learn: %s\n",
		req.CandidateName, req.CandidateTeaches, req.CandidateLearns)
	if req.CandidateLanguage != "" {
		fmt.Fprintf(&b, "- Preferred language: %s\n", req.CandidateLanguage)
	}

	fmt.Fprintf(&b, "\nMatch Scores:\n- Semantic similarity: %.2f\n- Reciprocity: %.2f\n- Availability overlap: %.2f\n",
		req.Match.SemanticScore, req.Match.ReciprocityScore, req.Match.AvailabilityScore)

	b.WriteString("\nFocus on how their skills complement each other, why the skill levels are compatible, ")
	b.WriteString("and any schedule alignment.\n")
	fmt.Fprintf(&b, "Keep it under %d characters. Be specific and encouraging.", MaxExplanationLength)
	return b.String()
}
