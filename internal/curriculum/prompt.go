package curriculum

import (
	"fmt"
	"strings"
)

const segmentSystem = "You are an expert curriculum planner. You divide raw study material into a sequence of teachable sections."

const lessonSystem = "You are an expert AI tutor. You write complete, self-contained lessons that teach one section of a larger topic."

func buildSegmentPrompt(content string) string {
	var b strings.Builder
	b.WriteString("Analyze the following study material and divide it into logical sections for structured lessons.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- If the material is complex, break it into more, smaller sections.\n")
	b.WriteString("- If the material is simple, use only 2-3 broader sections.\n")
	b.WriteString("- Section titles must be short and descriptive.\n")
	b.WriteString("- Respond with ONLY a JSON array of section title strings, nothing else.\n\n")
	b.WriteString("Example response:\n[\"Introduction to Variables\", \"Control Flow\", \"Functions\"]\n\n")
	b.WriteString("Material:\n")
	b.WriteString(content)
	return b.String()
}

func buildLessonPrompt(section, content, style string, ordinal int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write lesson %d of a course, covering the section %q.\n\n", ordinal+1, section)
	b.WriteString("The lesson must be fully self-contained and include:\n")
	b.WriteString("- a short introduction to the section\n")
	b.WriteString("- the key concepts, each clearly explained\n")
	b.WriteString("- an in-depth explanation of the most important ideas\n")
	b.WriteString("- concrete real-world examples\n")
	b.WriteString("- a summary and review of what was covered\n\n")
	fmt.Fprintf(&b, "Teaching depth: %s. Adjust vocabulary and detail accordingly.\n\n", style)
	b.WriteString("Base the lesson strictly on this source material:\n")
	b.WriteString(content)
	return b.String()
}
