package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/neurosnap/sentences/english"

	"hireflow/internal/models"
)

// resumeCharBudget caps how much résumé text goes into the prompt.
const resumeCharBudget = 5000

const truncationMarker = "\n...[resume truncated for length]"

// BuildPrompt assembles the single evaluation prompt sent to the
// provider: job context, truncated résumé text, the question/answer
// pairs, the weight split, optional recruiter instructions, and the
// strict output contract.
func BuildPrompt(candidate *models.Candidate, job *models.Job, resumeText string) string {
	resumePercent, answersPercent := weightPercents(job.ResumeWeight, job.AnswersWeight)

	var b strings.Builder

	b.WriteString("You are an experienced technical recruiter evaluating a job application.\n\n")

	b.WriteString("## JOB\n")
	fmt.Fprintf(&b, "Title: %s\n", job.Title)
	fmt.Fprintf(&b, "Description: %s\n\n", job.Description)

	b.WriteString("## RESUME\n")
	b.WriteString(truncateAtSentence(resumeText, resumeCharBudget))
	b.WriteString("\n\n")

	b.WriteString("## APPLICATION ANSWERS\n")
	if len(candidate.Answers) == 0 {
		b.WriteString("(no answers provided)\n")
	}
	for _, q := range job.Questions {
		answer, ok := candidate.AnswerFor(q.ID)
		if !ok || strings.TrimSpace(answer.Answer) == "" {
			continue
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", q.Question, strings.ReplaceAll(answer.Answer, models.MultipleChoiceSeparator, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## WEIGHTING\n")
	fmt.Fprintf(&b, "The resume counts for %d%% of the final evaluation and the application answers for %d%%.\n\n", resumePercent, answersPercent)

	if job.ScoringInstructions != nil && strings.TrimSpace(*job.ScoringInstructions) != "" {
		b.WriteString("## ADDITIONAL INSTRUCTIONS FROM THE RECRUITER\n")
		b.WriteString(*job.ScoringInstructions)
		b.WriteString("\n\n")
	}

	b.WriteString("## OUTPUT\n")
	b.WriteString("Return ONLY a raw JSON object, no markdown fences and no extra text, with exactly these fields:\n")
	b.WriteString("{\n")
	b.WriteString(`  "resume_rating": <integer 1-5, how well the resume fits the job>,` + "\n")
	b.WriteString(`  "answer_quality_rating": <integer 1-5, quality and relevance of the application answers>,` + "\n")
	b.WriteString(`  "resume_summary": "<2-3 sentence summary of the candidate's background>",` + "\n")
	fmt.Fprintf(&b, `  "experience_level": "<one of: %s>"`+"\n", strings.Join(models.ExperienceLevels, ", "))
	b.WriteString("}\n")

	return b.String()
}

// weightPercents converts the raw recruiter weights into rounded
// percentages. Each side is rounded independently, so the pair may not
// sum to exactly 100; that approximation is accepted.
func weightPercents(resumeWeight, answersWeight int) (int, int) {
	total := resumeWeight + answersWeight
	if total <= 0 {
		return 50, 50
	}
	resumePercent := int(math.Round(float64(resumeWeight) / float64(total) * 100))
	answersPercent := int(math.Round(float64(answersWeight) / float64(total) * 100))
	return resumePercent, answersPercent
}

// truncateAtSentence cuts text down to the budget, preferring a sentence
// boundary over a mid-word cut, and appends a marker when it truncated.
func truncateAtSentence(text string, budget int) string {
	text = strings.TrimSpace(text)
	if len(text) <= budget {
		return text
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		// Bundled training data failed to load; fall back to a hard cut.
		return text[:budget] + truncationMarker
	}
	var b strings.Builder
	for _, s := range tokenizer.Tokenize(text) {
		sentence := s.Text
		if b.Len()+len(sentence) > budget {
			break
		}
		b.WriteString(sentence)
	}

	if b.Len() == 0 {
		// A single run-on "sentence" longer than the whole budget.
		return text[:budget] + truncationMarker
	}
	return strings.TrimSpace(b.String()) + truncationMarker
}
