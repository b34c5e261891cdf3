package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

// completer is the narrative-service surface the enricher needs.
// Satisfied by *Client; tests substitute their own.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Enricher drives the optional narrative stage. It never fails the
// run: any service or parse error degrades to the default record.
type Enricher struct {
	client completer
}

// NewEnricher wraps a narrative-service client.
func NewEnricher(client *Client) *Enricher {
	return &Enricher{client: client}
}

// Enrich samples the account's original posts and asks the narrative
// service for one structured insight record. Large samples are
// summarized chunk by chunk and synthesized in a final pass.
func (e *Enricher) Enrich(ctx context.Context, accountName string, year int, posts []model.Post) Insight {
	samples := SamplePosts(posts)
	if len(samples) == 0 {
		util.LogWarn("No post text available to enrich, using default insight")
		return DefaultInsight()
	}

	var prompt string
	if len(samples) > chunkSize {
		summaries, err := e.summarizeChunks(ctx, samples)
		if err != nil {
			util.LogWarnf("Chunk summarization failed, using default insight: %v", err)
			return DefaultInsight()
		}
		prompt = buildSynthesisPrompt(accountName, year, summaries)
	} else {
		var sb strings.Builder
		writeSampleList(&sb, samples)
		prompt = buildInsightPrompt(accountName, year, sb.String())
	}

	raw, err := e.client.Complete(ctx, prompt)
	if err != nil {
		util.LogWarnf("Narrative service unavailable, using default insight: %v", err)
		return DefaultInsight()
	}

	insight, err := ParseInsight(raw)
	if err != nil {
		util.LogWarnf("Narrative response unparseable, using default insight: %v", err)
		return DefaultInsight()
	}
	return insight
}

func (e *Enricher) summarizeChunks(ctx context.Context, samples []string) ([]string, error) {
	chunks := chunkSamples(samples)
	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := e.client.Complete(ctx, buildChunkPrompt(chunk))
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, strings.TrimSpace(summary))
	}
	return summaries, nil
}
