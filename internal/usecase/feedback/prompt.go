package feedback

import "fmt"

const systemInstruction = "You are a professional interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories."

const promptTemplate = `You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.
Transcript:
%s

Please score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:
- **Communication Skills**: Clarity, articulation, structured responses.
- **Technical Knowledge**: Understanding of key concepts for the role.
- **Problem Solving**: Ability to analyze problems and propose solutions.
- **Cultural Fit**: Alignment with company values and job role.
- **Confidence and Clarity**: Confidence in responses, engagement, and clarity.

Respond with a JSON object of the shape:
{
  "totalScore": number,
  "categoryScores": [{"name": string, "score": number, "comment": string}],
  "strengths": [string],
  "areasForImprovement": [string],
  "finalAssessment": string
}
The categoryScores array must contain exactly the five categories above, in that order, using those exact names.`

// buildPrompt assembles the evaluation prompt around a formatted transcript
func buildPrompt(formattedTranscript string) string {
	return fmt.Sprintf(promptTemplate, formattedTranscript)
}
