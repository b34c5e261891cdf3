package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/data/archive"
	"github.com/mastowrap/mastowrap/internal/data/source"
	"github.com/mastowrap/mastowrap/internal/enrich"
	"github.com/mastowrap/mastowrap/internal/presentation/formatter"
	"github.com/mastowrap/mastowrap/internal/presentation/report"
	"github.com/mastowrap/mastowrap/internal/stats"
	"github.com/mastowrap/mastowrap/internal/util"
)

type Config struct {
	Year         int
	Server       string
	Account      string
	Token        string
	Timezone     string
	OutputFormat string // summary, json, html
	OutputDir    string
	SnapshotDir  string
	SkipAI       bool
	FetchOnly    bool
	ComputeOnly  bool
	// AI configuration
	AIKey     string
	AIModel   string
	AIBaseURL string
}

type Analyzer struct {
	config *Config
	source *source.Client
}

func New(config *Config) *Analyzer {
	a := &Analyzer{config: config}
	if !config.ComputeOnly {
		a.source = source.NewClient(config.Server, config.Token)
	}
	return a
}

func (a *Analyzer) Run(ctx context.Context) error {
	startTime := time.Now()
	util.LogInfof("Starting year in review for %d...", a.config.Year)

	// Phase 1: Acquire posts, from the API or a saved snapshot
	acquireStart := time.Now()
	account, posts, err := a.acquire(ctx)
	if err != nil {
		return err
	}
	util.LogDebugf("Phase 1 - Acquire duration: %v, %d posts", time.Since(acquireStart), len(posts))

	if a.config.FetchOnly {
		util.LogInfo("Fetch complete, skipping analysis")
		return nil
	}

	// Phase 2: Filter to the target year
	filterStart := time.Now()
	window := stats.NewYearWindow(a.config.Year, util.GetTimeProvider().Location())
	yearPosts := stats.FilterYear(posts, window)
	util.LogDebugf("Phase 2 - Filter duration: %v, %d posts in %d", time.Since(filterStart), len(yearPosts), a.config.Year)

	if len(yearPosts) == 0 {
		return fmt.Errorf("no posts found for %s in %d", account.Handle(), a.config.Year)
	}

	// Phase 3: Aggregate and classify
	statsStart := time.Now()
	aggregate := stats.Aggregate(yearPosts)
	persona := stats.ClassifyPersona(yearPosts)
	chronotype := stats.ClassifyChronotype(yearPosts)
	histograms := stats.Bucketize(yearPosts)
	util.LogDebugf("Phase 3 - Stats duration: %v", time.Since(statsStart))

	// Phase 4: Calendar, heatmap and rankings
	rankStart := time.Now()
	calendar := stats.BuildCalendar(yearPosts)
	heatmap := stats.BuildHeatmap(a.config.Year, calendar)
	topHashtags := stats.TopHashtags(yearPosts)
	topPosts := stats.TopPosts(yearPosts)
	util.LogDebugf("Phase 4 - Ranking duration: %v", time.Since(rankStart))

	// Phase 5: AI enrichment (optional)
	insight := enrich.DefaultInsight()
	enriched := false
	if !a.config.SkipAI && a.config.AIKey != "" {
		enrichStart := time.Now()
		client := enrich.NewClient(enrich.ClientConfig{
			APIKey:  a.config.AIKey,
			Model:   a.config.AIModel,
			BaseURL: a.config.AIBaseURL,
		})
		insight = enrich.NewEnricher(client).Enrich(ctx, account.Name(), a.config.Year, yearPosts)
		enriched = true
		util.LogDebugf("Phase 5 - Enrichment duration: %v", time.Since(enrichStart))
	} else {
		util.LogDebug("Phase 5 - Enrichment skipped")
	}

	result := &report.Report{
		Account:        account,
		Year:           a.config.Year,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Stats:          aggregate,
		Persona:        persona,
		Chronotype:     chronotype,
		Histograms:     histograms,
		BusiestMonth:   stats.Busiest(histograms.Months),
		BusiestHour:    stats.Busiest(histograms.Hours),
		BusiestWeekday: stats.Busiest(histograms.Weekdays),
		Calendar:       calendar,
		Heatmap:        heatmap,
		TopHashtags:    topHashtags,
		TopPosts:       topPosts,
		Insight:        insight,
		Enriched:       enriched,
	}

	// Phase 6: Output
	formatStart := time.Now()
	if err := a.format(result); err != nil {
		return err
	}
	util.LogDebugf("Phase 6 - Format duration: %v", time.Since(formatStart))

	util.LogInfof("Analysis complete in %v", time.Since(startTime))
	return nil
}

// acquire resolves the account and its posts. Compute-only runs read a
// previously saved snapshot; everything else hits the API and saves
// one for later compute-only runs.
func (a *Analyzer) acquire(ctx context.Context) (model.Account, []model.Post, error) {
	snapshotPath := archive.Path(a.config.SnapshotDir, a.config.Account, a.config.Year)

	if a.config.ComputeOnly {
		snapshot, err := archive.Load(snapshotPath)
		if err != nil {
			return model.Account{}, nil, fmt.Errorf("compute-only run needs a snapshot, fetch first: %w", err)
		}
		return snapshot.Account, snapshot.Posts, nil
	}

	account, err := a.resolveAccount(ctx)
	if err != nil {
		return model.Account{}, nil, err
	}
	util.LogInfof("Resolved account %s (%s)", account.Name(), account.Handle())

	window := stats.NewYearWindow(a.config.Year, util.GetTimeProvider().Location())
	posts, err := a.source.FetchStatuses(ctx, account.Id, window.Start)
	if err != nil {
		return model.Account{}, nil, err
	}

	snapshotPath = archive.Path(a.config.SnapshotDir, account.Acct, a.config.Year)
	if err := archive.Save(snapshotPath, account, a.config.Year, posts); err != nil {
		util.LogWarnf("Failed to save snapshot: %v", err)
	}

	return account, posts, nil
}

func (a *Analyzer) resolveAccount(ctx context.Context) (model.Account, error) {
	if a.config.Account != "" {
		return a.source.LookupAccount(ctx, a.config.Account)
	}
	if a.config.Token == "" {
		return model.Account{}, fmt.Errorf("either --account or --token is required")
	}
	return a.source.VerifyCredentials(ctx)
}

func (a *Analyzer) format(result *report.Report) error {
	switch a.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(result)
	case "html":
		return formatter.NewHTMLFormatter(a.config.OutputDir).Format(result)
	case "summary", "":
		return formatter.NewSummaryFormatter().Format(result)
	default:
		return fmt.Errorf("unknown output format: %s", a.config.OutputFormat)
	}
}
