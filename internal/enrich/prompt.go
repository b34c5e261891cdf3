package enrich

import (
	"fmt"
	"strings"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/stats"
)

const (
	sampleBatchSize = 120
	sampleMaxRunes  = 400
	chunkSize       = 40
)

const insightSchema = `{
  "mood": "one or two words describing the overall mood",
  "persona": "a playful two or three word archetype",
  "traits": ["three short personality traits"],
  "topics": ["up to five recurring topics"],
  "narrative": "two warm sentences summarizing the posting year",
  "fun_fact": "one surprising observation"
}`

// SamplePosts takes up to sampleBatchSize original posts' plain text,
// each truncated, preserving source order.
func SamplePosts(posts []model.Post) []string {
	var samples []string
	for i := range posts {
		if len(samples) >= sampleBatchSize {
			break
		}
		if !posts[i].IsOriginal() {
			continue
		}
		text := stats.StripMarkup(posts[i].Content)
		if text == "" {
			continue
		}
		runes := []rune(text)
		if len(runes) > sampleMaxRunes {
			text = string(runes[:sampleMaxRunes])
		}
		samples = append(samples, text)
	}
	return samples
}

// chunkSamples splits samples into fixed-size chunks for independent
// summarization.
func chunkSamples(samples []string) [][]string {
	var chunks [][]string
	for start := 0; start < len(samples); start += chunkSize {
		end := start + chunkSize
		if end > len(samples) {
			end = len(samples)
		}
		chunks = append(chunks, samples[start:end])
	}
	return chunks
}

// buildInsightPrompt asks for exactly one JSON record matching the
// insight schema.
func buildInsightPrompt(accountName string, year int, body string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are writing a playful year-in-review for the fediverse account %q covering %d.\n\n", accountName, year)
	sb.WriteString("Based on the posts below, respond with ONLY one JSON object, no other text, matching this shape:\n")
	sb.WriteString(insightSchema)
	sb.WriteString("\n\nPosts:\n")
	sb.WriteString(body)
	return sb.String()
}

// buildChunkPrompt asks for a short free-text summary of one chunk.
func buildChunkPrompt(samples []string) string {
	var sb strings.Builder
	sb.WriteString("Summarize the recurring topics, tone, and personality in these social media posts in at most three sentences:\n\n")
	writeSampleList(&sb, samples)
	return sb.String()
}

// buildSynthesisPrompt merges chunk summaries into the final record.
func buildSynthesisPrompt(accountName string, year int, summaries []string) string {
	var sb strings.Builder
	sb.WriteString("These are partial summaries of one account's posting year:\n\n")
	for i, summary := range summaries {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, summary)
	}
	return buildInsightPrompt(accountName, year, sb.String())
}

func writeSampleList(sb *strings.Builder, samples []string) {
	for _, sample := range samples {
		sb.WriteString("- ")
		sb.WriteString(sample)
		sb.WriteByte('\n')
	}
}
