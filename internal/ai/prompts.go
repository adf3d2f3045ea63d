package ai

import "fmt"

func noteGenerationPrompt(transcriptContent, language string) string {
	return fmt.Sprintf(`
Please analyze the following content and generate a structured note. Keep the generated note in the same language as the original content.

Content:
%s

Please structure this content to make the viewpoints clearer and list the logical chains in the content.
Do not fabricate content; stay as faithful as possible to the original facts.
Keep the generated note length roughly equivalent to the original content length, but you don't need to strictly adhere to this principle.
Please return directly with the structured note, without including any content other than the structured note.
Return a brief title in the title field and the structured note content in the content field.
Please maintain only the top-level JSON format, do not nest JSON in title or content.
Do not add any extra text before or after the JSON object.
Please generate in the following language: %s.
`, transcriptContent, language)
}

func followUpQuestionsPrompt(noteContent, language string) string {
	return fmt.Sprintf(`
Please analyze the following note content and generate 3-5 related follow-up questions.

Note content:
%s

Please generate questions that can help clarify, deepen understanding, or supplement the note information.
You can imagine you are a listener who wants to ask questions to the speaker after hearing the above note content.
Please keep the generated questions in the same language as the note content.
Return the questions as a list in the questions field.
Please generate the questions in the following language: %s.
`, noteContent, language)
}

func incorporateAnswerPrompt(noteContent, question, answer, language string) string {
	return fmt.Sprintf(`
Please analyze the following note content and Q&A content, then update the note by incorporating the answer.

Original note content:
%s

Q&A content:
Question: %s
Answer: %s

Please update the original note by incorporating the answer.
Keep the structure and length of the newly generated note slightly longer than the original note.
Please maintain the same language.
Please return directly with the structured note, without including any content other than the structured note.
Return a brief title in the title field and the structured note content in the content field, keeping the content as plain text.
Please maintain only the top-level JSON format, do not nest JSON in title or content.
Do not add any extra text before or after the JSON object.
Please generate in the following language: %s.
`, noteContent, question, answer, language)
}
