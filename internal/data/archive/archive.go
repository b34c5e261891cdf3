package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

// Snapshot is one fetch run's output: the account plus every status
// pulled for the target year. It is an input file for compute-only
// runs, not analytic state.
type Snapshot struct {
	Account   model.Account `json:"account"`
	Year      int           `json:"year"`
	FetchedAt string        `json:"fetchedAt"`
	Posts     []model.Post  `json:"posts"`
}

// Path returns the snapshot file location for an account and year.
func Path(dir, acct string, year int) string {
	name := strings.NewReplacer("@", "_", "/", "_").Replace(acct)
	if name == "" {
		name = "account"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d.json", name, year))
}

// Save writes a snapshot, creating the directory if needed.
func Save(path string, account model.Account, year int, posts []model.Post) error {
	snapshot := Snapshot{
		Account:   account,
		Year:      year,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Posts:     posts,
	}

	data, err := sonic.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	util.LogInfof("Saved %d posts to %s", len(posts), path)
	return nil
}

// Load reads a snapshot written by Save.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := sonic.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	util.LogDebugf("Loaded %d posts from %s", len(snapshot.Posts), path)
	return snapshot, nil
}
