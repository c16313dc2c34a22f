package summarizer

import (
	"fmt"

	"github.com/dtnitsch/page-digest/models"
	"github.com/dtnitsch/page-digest/pkg/promptsize"
)

const summarySystemPrompt = `You are an expert summarizer. Your job is to produce clear, concise, and accurate summaries that capture the essential information and intent of the original text, while remaining highly readable. Prioritize the main ideas, key arguments, and critical details, and keep the level of detail proportional to the length of the source. Avoid unnecessary repetition or filler. Write in fluent, natural language, and ensure the summary is useful for someone who has not read the original.`

const tldrSystemPrompt = `You are an expert summarizer. You distill a page into a single, punchy TL;DR sentence that states the one thing a reader most needs to know. No preamble, no hedging.`

// languageDirective maps a resolved language code to the prompt
// instruction. "auto" (and any code outside the supported set) preserves
// the source text's language instead of naming one.
func languageDirective(code string) string {
	if name, ok := models.LanguageName(code); ok {
		return fmt.Sprintf("Write the summary in %s.", name)
	}
	return "Write the summary in the same language as the original text."
}

// summaryUserPrompt embeds the sentence target, the language directive, and
// the source word count so the model can calibrate its own output length.
func summaryUserPrompt(req models.SummaryRequest, wordCount int, plan promptsize.Plan) string {
	return fmt.Sprintf(
		"Summarize the following page content (about %d words) in approximately %d sentences. %s Be concise but comprehensive:\n\n%s",
		wordCount, plan.TargetSentences, languageDirective(req.Language), req.Text,
	)
}

func tldrUserPrompt(text, lang string) string {
	return fmt.Sprintf(
		"Give a TL;DR of the following page content in one short sentence. %s\n\n%s",
		languageDirective(lang), text,
	)
}
