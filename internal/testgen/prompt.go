package testgen

import "strings"

const testSystem = "You are an expert examiner. You write assessments that check whether a student actually understood a lesson."

func buildTestPrompt(lessonContent string) string {
	var b strings.Builder
	b.WriteString("Create a test for the lesson below with a mix of question types, adapted to the content:\n")
	b.WriteString("- \"mcq\": multiple-choice with exactly 4 options, labeled internally A-D. Set \"correctAnswer\" to the letter of the right option (\"A\", \"B\", \"C\" or \"D\"). Write at least 2 MCQs; if the material is factual or has clear answers, write 3 or 4.\n")
	b.WriteString("- \"theory\": an open question asking the student to explain a concept. Set \"correctAnswer\" to a model reference answer. If the material is concept-based or needs detailed explanations, write 2 or more theory questions.\n")
	b.WriteString("- \"practical\": an open exercise applying the lesson. Set \"correctAnswer\" to a model reference answer. If the material involves code, algorithms or implementation tasks, write at least 1 practical question.\n\n")
	b.WriteString("Respond with ONLY a JSON array of objects with keys \"type\", \"question\", \"options\" (mcq only) and \"correctAnswer\".\n\n")
	b.WriteString("Lesson:\n")
	b.WriteString(lessonContent)
	return b.String()
}
