package generator

import "fmt"

// BuildPrompt constructs the instruction that asks the model for a structured
// educational article with the six labeled sections in a fixed order.
func BuildPrompt(topic string) string {
	return fmt.Sprintf(`You are an expert educator and technical writer. Produce a clear, well-structured, up-to-date educational article
on the following topic. The user wants a comprehensive but readable article suitable for learners and practitioners.

Topic: %q

Requirements:
- The article must include clearly labeled sections in this exact order:
  1) Title
  2) Introduction
  3) Key Concepts
  4) Practical Examples
  5) Further Reading
  6) Summary
- Use headings for each section (e.g., "Title:", "Introduction:", "Key Concepts:", etc.).
- Keep writing concise but informative. Use bullet points in Key Concepts and Practical Examples when helpful.
- Include at least 2 practical, concrete examples or mini-tutorial steps in Practical Examples.
- For Further Reading, include 4 suggestions (books, papers, or authoritative websites) with a 1-sentence reason for each.
- Aim for a total length ~600-1200 words. Use current best-practices where applicable.
- Don't include unrelated content or marketing fluff. No code other than short example snippets if relevant.

Return the article as plain text.`, topic)
}
