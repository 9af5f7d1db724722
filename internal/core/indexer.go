package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/codescope/codescope/internal/config"
	"github.com/codescope/codescope/internal/database"
	"github.com/codescope/codescope/internal/parsers"
	"github.com/codescope/codescope/internal/utils"
)

// excludedDirs are skipped by name wherever they appear in the tree.
var excludedDirs = map[string]struct{}{
	"build":        {},
	"node_modules": {},
	".gradle":      {},
	".git":         {},
	"target":       {},
	".idea":        {},
	"__pycache__":  {},
	".dart_tool":   {},
}

// Counts summarizes one indexing pass: files whose rows were written,
// the subset that existed before with a different fingerprint, and
// files pruned because they no longer exist on disk.
type Counts struct {
	Updated int
	Changed int
	Deleted int
}

// Indexer drives full and incremental indexing of a project tree. All
// parsing and store access is sequential.
type Indexer struct {
	root   string
	cfg    *config.Config
	db     *database.DB
	logger *utils.Logger
}

// NewIndexer creates an indexer rooted at root.
func NewIndexer(root string, cfg *config.Config, db *database.DB) *Indexer {
	return &Indexer{
		root:   root,
		cfg:    cfg,
		db:     db,
		logger: utils.NewLogger("indexer"),
	}
}

// Rebuild walks the whole tree, upserts every supported file and prunes
// rows for files that are gone. The per-file fingerprint check makes a
// rebuild over an unchanged tree a no-op.
func (idx *Indexer) Rebuild() (Counts, error) {
	return idx.scan()
}

// Update is the incremental pass: the same traversal, short-circuiting
// on unchanged fingerprints inside the store.
func (idx *Indexer) Update() (Counts, error) {
	return idx.scan()
}

func (idx *Indexer) scan() (Counts, error) {
	var counts Counts
	seen := make(map[string]struct{})

	err := filepath.WalkDir(idx.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == idx.root {
				return err
			}
			idx.logger.Warnf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(idx.root, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if _, excluded := excludedDirs[d.Name()]; excluded {
				return filepath.SkipDir
			}
			if d.Name() == idx.cfg.IndexDir {
				return filepath.SkipDir
			}
			if idx.cfg.Excluded(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if idx.cfg.Excluded(relPath) {
			return nil
		}

		status, indexed, err := idx.indexFile(path, relPath)
		if err != nil {
			idx.logger.Warnf("failed to index %s: %v", relPath, err)
			// The file still exists; keep its previously stored rows.
			seen[filepath.ToSlash(relPath)] = struct{}{}
			return nil
		}
		if !indexed {
			return nil
		}

		seen[filepath.ToSlash(relPath)] = struct{}{}
		switch status {
		case database.FileInserted:
			counts.Updated++
		case database.FileUpdated:
			counts.Updated++
			counts.Changed++
		}
		return nil
	})
	if err != nil {
		return counts, fmt.Errorf("walk failed: %w", err)
	}

	deleted, err := idx.db.PruneMissing(seen)
	if err != nil {
		return counts, fmt.Errorf("failed to prune deleted files: %w", err)
	}
	counts.Deleted = deleted

	return counts, nil
}

// indexFile reads and upserts one file. The second return is false when
// the file is not of an indexable kind or is skipped as invalid UTF-8.
func (idx *Indexer) indexFile(path, relPath string) (database.UpsertStatus, bool, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dialect, isSource := parsers.DialectForExt(ext)
	usageTable, isUsage := usageTableForExt(ext)
	if !isSource && !isUsage {
		return database.FileUnchanged, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return database.FileUnchanged, false, err
	}
	if !utf8.Valid(data) {
		idx.logger.Warnf("skipping %s: not valid UTF-8", relPath)
		return database.FileUnchanged, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return database.FileUnchanged, false, err
	}

	hash := utils.HashBytes(data)
	mtime := info.ModTime()
	storePath := filepath.ToSlash(relPath)
	content := string(data)

	if isUsage {
		var usages = parsers.ScanXmlUsages(content)
		if usageTable == database.StoryboardUsages {
			usages = parsers.ScanStoryboardUsages(content)
		}
		status, err := idx.db.UpsertUsageFile(storePath, hash, mtime, usageTable, usages)
		return status, err == nil, err
	}

	symbols, refs := parsers.ParseFile(dialect, content)
	status, err := idx.db.UpsertSourceFile(storePath, hash, mtime, symbols, refs)
	return status, err == nil, err
}

// usageTableForExt maps layout and UI descriptor extensions to their
// usage table. These are outside the source-dialect set; the analyzer
// consumes their tables read-only.
func usageTableForExt(ext string) (database.UsageTable, bool) {
	switch ext {
	case "xml":
		return database.XmlUsages, true
	case "storyboard", "xib":
		return database.StoryboardUsages, true
	default:
		return "", false
	}
}
