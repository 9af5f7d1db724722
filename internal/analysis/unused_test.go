package analysis

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescope/codescope/internal/database"
	"github.com/codescope/codescope/pkg/types"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func unusedNames(report *UnusedReport) []string {
	names := make([]string, 0, len(report.Unused))
	for _, s := range report.Unused {
		names = append(names, s.Name)
	}
	return names
}

func TestFindUnusedReportsOrphan(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertSourceFile("src/a.kt", "h1", time.Now(), []types.ParsedSymbol{
		{Name: "OrphanService", Kind: types.KindClass, Line: 1, Signature: "class OrphanService {"},
	}, nil)
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{Limit: 10})
	require.NoError(t, err)

	require.Len(t, report.Unused, 1)
	assert.Equal(t, "OrphanService", report.Unused[0].Name)
	assert.Equal(t, "class", report.Unused[0].Kind)
	assert.Equal(t, "src/a.kt", report.Unused[0].Path)
	assert.Equal(t, 1, report.Unused[0].Line)
	assert.Equal(t, 1, report.Checked)
}

func TestFindUnusedSkipsReferencedSymbols(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertSourceFile("src/a.kt", "h1", time.Now(), []types.ParsedSymbol{
		{Name: "UsedService", Kind: types.KindClass, Line: 1, Signature: "class UsedService {"},
		{Name: "OrphanService", Kind: types.KindClass, Line: 5, Signature: "class OrphanService {"},
	}, nil)
	require.NoError(t, err)

	_, err = db.UpsertSourceFile("src/b.kt", "h2", time.Now(), nil, []types.ParsedRef{
		{Name: "UsedService", Line: 3, Context: "val s = UsedService()"},
	})
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"OrphanService"}, unusedNames(report))
}

func TestFindUnusedSkipsLayoutReferencedClasses(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertSourceFile("src/CardView.kt", "h1", time.Now(), []types.ParsedSymbol{
		{Name: "CardView", Kind: types.KindClass, Line: 1, Signature: "class CardView {"},
	}, nil)
	require.NoError(t, err)

	_, err = db.UpsertUsageFile("res/layout/card.xml", "h2", time.Now(), database.XmlUsages,
		[]types.Usage{{ClassName: "CardView", Line: 2}})
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, report.Unused, "layout usage counts as a use")
}

func TestFindUnusedSkipsStoryboardReferencedClasses(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertSourceFile("src/CardVC.swift", "h1", time.Now(), []types.ParsedSymbol{
		{Name: "CardViewController", Kind: types.KindClass, Line: 1, Signature: "class CardViewController: UIViewController {"},
	}, nil)
	require.NoError(t, err)

	_, err = db.UpsertUsageFile("ui/Main.storyboard", "h2", time.Now(), database.StoryboardUsages,
		[]types.Usage{{ClassName: "CardViewController", Line: 7}})
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, report.Unused)
}

func TestFindUnusedHonorsLimit(t *testing.T) {
	db := setupTestDB(t)

	symbols := []types.ParsedSymbol{
		{Name: "OrphanA", Kind: types.KindClass, Line: 1, Signature: "class OrphanA"},
		{Name: "OrphanB", Kind: types.KindClass, Line: 2, Signature: "class OrphanB"},
		{Name: "OrphanC", Kind: types.KindClass, Line: 3, Signature: "class OrphanC"},
	}
	_, err := db.UpsertSourceFile("src/a.kt", "h1", time.Now(), symbols, nil)
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, report.Unused, 2)
}

func TestFindUnusedModulePrefix(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertSourceFile("app/src/a.kt", "h1", time.Now(), []types.ParsedSymbol{
		{Name: "AppOrphan", Kind: types.KindClass, Line: 1, Signature: "class AppOrphan"},
	}, nil)
	require.NoError(t, err)
	_, err = db.UpsertSourceFile("lib/src/b.kt", "h2", time.Now(), []types.ParsedSymbol{
		{Name: "LibOrphan", Kind: types.KindClass, Line: 1, Signature: "class LibOrphan"},
	}, nil)
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{Module: "app/", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"AppOrphan"}, unusedNames(report))
}

func TestFindUnusedExportOnly(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertSourceFile("src/a.kt", "h1", time.Now(), []types.ParsedSymbol{
		{Name: "Exported", Kind: types.KindClass, Line: 1, Signature: "class Exported"},
		{Name: "internalHelper", Kind: types.KindFunction, Line: 2, Signature: "fun internalHelper()"},
	}, nil)
	require.NoError(t, err)

	report, err := FindUnused(db, UnusedOptions{ExportOnly: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Exported"}, unusedNames(report))
}
