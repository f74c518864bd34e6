package generate

import (
	"fmt"
	"strings"
)

func materialBlock(src Source) string {
	if src.Text != "" {
		return "Study material:\n\"\"\"\n" + src.Text + "\n\"\"\""
	}
	return "Use the attached video as the study material."
}

func summaryPrompt(src Source) string {
	return fmt.Sprintf(`Write a concise summary of the study material below.
Cover the key ideas a student must remember, in 2-4 paragraphs of plain prose.
Respond with the summary only, no preamble.

%s`, materialBlock(src))
}

func notesPrompt(src Source) string {
	return fmt.Sprintf(`Turn the study material below into structured revision notes.
Respond with a single JSON object, no other text:
{"title": "short descriptive title", "content": "well-organized markdown notes with headings and bullet points"}

%s`, materialBlock(src))
}

func flashcardsPrompt(src Source, count int) string {
	return fmt.Sprintf(`Create exactly %d flashcards from the study material below.
Respond with a single JSON array, no other text:
[{"question": "...", "answer": "..."}]
Questions must be answerable from the material alone.

%s`, count, materialBlock(src))
}

func quizPrompt(src Source, count int, previous []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Create exactly %d multiple-choice quiz questions from the study material below.
Respond with a single JSON array, no other text:
[{"question": "...", "options": ["A", "B", "C", "D"], "correctAnswer": 0, "explanation": "..."}]
Each entry needs exactly 4 options and correctAnswer is the zero-based index of the right one.

`, count)

	if len(previous) > 0 {
		//steers the model away from near-duplicates, not a hard guarantee
		sb.WriteString("Avoid repeating these previously asked questions:\n")
		for _, q := range previous {
			sb.WriteString("- " + q + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(materialBlock(src))
	return sb.String()
}
