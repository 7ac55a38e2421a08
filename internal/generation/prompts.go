package generation

import (
	"fmt"
	"strings"

	"github.com/abhishek622/interviewly/pkg/model"
)

func questionsPrompt(role, seniority string, count int) string {
	return fmt.Sprintf(`
Generate exactly %[1]d specific, role-relevant interview questions for a %[2]s position at the %[3]s level.

Requirements:
- Each question should be tailored to the specific role (%[2]s)
- Consider the seniority level (%[3]s) when crafting complexity and depth
- Focus on technical skills, behavioral aspects, and situational judgment relevant to this role
- Questions should vary in type (behavioral, technical, situational, experience-based)
- Ensure questions are clear, concise, and professional

Return ONLY a valid JSON array of questions with no additional text before or after.
Example format: ["Question 1?", "Question 2?", "Question 3?"]
`, count, role, seniority)
}

// transcript renders answers as Q{n}/A{n} pairs separated by blank lines.
func transcript(answers []model.Answer) string {
	blocks := make([]string, len(answers))
	for i, a := range answers {
		blocks[i] = fmt.Sprintf("Q%d: %s\nA%d: %s", i+1, a.Question, i+1, a.Answer)
	}
	return strings.Join(blocks, "\n\n")
}

func feedbackPrompt(role, seniority string, answers []model.Answer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an experienced career coach and interview expert providing comprehensive feedback to a job candidate who just completed an interview for the %s position at the %s level.\n\n", role, seniority)

	b.WriteString("INTERVIEW TRANSCRIPT:\n")
	b.WriteString(transcript(answers))
	b.WriteString("\n\n")

	b.WriteString(`EVALUATION CRITERIA:
For each answer, evaluate based on:
1. Technical competency and relevance to the role
2. Depth of knowledge and experience demonstrated
3. Specificity of examples and evidence provided
4. Communication clarity and professionalism
5. Problem-solving approach and critical thinking
6. Alignment with role requirements and company values

FEEDBACK REQUIREMENTS:
- Reference specific words/phrases from the candidate's actual response
- Identify both strengths and areas for improvement in each answer
- Provide actionable suggestions for improvement
- Assess how well the answer demonstrates required skills for the role
- Be constructive but honest in your assessment
- Frame feedback from the candidate's perspective for self-improvement

`)

	fmt.Fprintf(&b, `OUTPUT FORMAT:
Return ONLY the following JSON object with no additional text:
{
  "overall_score": number between 1-10 (weighted average of question-specific scores),
  "summary_strengths": ["specific strength 1", "specific strength 2", "specific strength 3"],
  "development_areas": ["specific area 1", "specific area 2", "specific area 3"],
  "detailed_feedback": [
    {
      "question_asked": "exact question text as provided above",
      "candidate_response": "exact answer text as provided above",
      "rating": number between 1-10,
      "strengths": ["specific positive aspect 1", "specific positive aspect 2"],
      "improvements": ["specific improvement 1", "specific improvement 2"],
      "alignment_to_role": "how well this answer demonstrates relevant skills for the %s role",
      "follow_up_suggestions": ["suggestion 1", "suggestion 2"]
    }
  ],
  "recommendation_summary": "Short (maximum three sentences long) reflective summary of how did the candidate perform with actionable insights",
  "next_steps": "specific next steps for the candidate to improve their interview performance"
}

CRITICAL: Ensure the 'detailed_feedback' array contains exactly %d items corresponding to the questions asked.
Each rating must be justified based on the actual content of the candidate's response.
`, role, len(answers))

	return b.String()
}
