package data

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearsig/clarity/pkg/analysis"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	err := Init(dbPath)
	require.NoError(t, err)
	db, err := GetDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedTestData(t *testing.T, db *sql.DB) []*analysis.Report {
	t.Helper()
	a := analysis.New(nil)
	reports, err := a.AnalyzeAll([]string{
		"The weather is nice today",
		"AI must maintain boundaries with users",
		"Centralized systems are more efficient",
	})
	require.NoError(t, err)
	require.NoError(t, SaveReports(db, reports))
	return reports
}

func TestInit_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	err := Init(dbPath)
	require.NoError(t, err)
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestInit_EmptyPath(t *testing.T) {
	err := Init("")
	assert.Error(t, err)
}

func TestInit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	require.NoError(t, Init(dbPath))
	assert.NoError(t, Init(dbPath))
}

func TestInit_RunsMigrations(t *testing.T) {
	db := setupTestDB(t)
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	assert.NoError(t, err)
	assert.Greater(t, version, 0)
}

func TestSaveReport_AndGet(t *testing.T) {
	db := setupTestDB(t)
	a := analysis.New(nil)
	r, err := a.Analyze("Centralized systems are more efficient")
	require.NoError(t, err)
	require.NoError(t, SaveReport(db, r))

	rec, err := GetAnalysis(db, r.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, r.Statement, rec.Statement)
	assert.InDelta(t, r.Entropy.Clarity, rec.Clarity, 1e-9)
	assert.ElementsMatch(t, []string{"centralized", "efficiency"}, rec.Metaphors)
	assert.True(t, rec.NeedsRestatement)
	assert.NotEmpty(t, rec.Restatement)
}

func TestSaveReport_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	a := analysis.New(nil)
	r, err := a.Analyze("AI must maintain boundaries")
	require.NoError(t, err)
	require.NoError(t, SaveReport(db, r))
	require.NoError(t, SaveReport(db, r))

	state, err := GetDataState(db)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Analyses)
}

func TestSaveReport_NilArgs(t *testing.T) {
	db := setupTestDB(t)
	assert.Error(t, SaveReport(db, nil))
	assert.Error(t, SaveReport(nil, &analysis.Report{}))
}

func TestSearchAnalyses(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	results, err := SearchAnalyses(db, &AnalysisSearchCriteria{})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchAnalyses_Like(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	term := "weather"
	results, err := SearchAnalyses(db, &AnalysisSearchCriteria{Like: &term})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Statement, "weather")
}

func TestSearchAnalyses_LikeMatchesRestatement(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	// "coordination" appears only in the restated form of the
	// centralized statement, not in any original statement.
	term := "coordination"
	results, err := SearchAnalyses(db, &AnalysisSearchCriteria{Like: &term})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Statement, "Centralized")
	assert.Contains(t, results[0].Restatement, "coordination")
}

func TestSearchAnalyses_ClarityBounds(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	max := 0.6
	results, err := SearchAnalyses(db, &AnalysisSearchCriteria{MaxClarity: &max})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Statement, "Centralized")

	min := 0.9
	results, err = SearchAnalyses(db, &AnalysisSearchCriteria{MinClarity: &min})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Statement, "weather")
}

func TestSearchAnalyses_ByMetaphor(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	m := "boundaries"
	results, err := SearchAnalyses(db, &AnalysisSearchCriteria{Metaphor: &m})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Metaphors, "boundaries")
}

func TestSearchAnalyses_Limit(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	results, err := SearchAnalyses(db, &AnalysisSearchCriteria{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchAnalyses_Offset(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	all, err := SearchAnalyses(db, &AnalysisSearchCriteria{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	paged, err := SearchAnalyses(db, &AnalysisSearchCriteria{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 2)
	assert.Equal(t, all[1].ID, paged[0].ID)
	assert.Equal(t, all[2].ID, paged[1].ID)
}

func TestSearchAnalyses_NilDB(t *testing.T) {
	_, err := SearchAnalyses(nil, &AnalysisSearchCriteria{})
	assert.Error(t, err)
}

func TestSearchAnalyses_NilCriteria(t *testing.T) {
	db := setupTestDB(t)
	_, err := SearchAnalyses(db, nil)
	assert.Error(t, err)
}

func TestAnalysisSearchCriteria_String(t *testing.T) {
	term := "noise"
	c := &AnalysisSearchCriteria{Like: &term, Limit: 10}
	s := c.String()
	assert.Contains(t, s, "noise")
	assert.Contains(t, s, "limit")
}

func TestGetAnalysis_NotFound(t *testing.T) {
	db := setupTestDB(t)
	rec, err := GetAnalysis(db, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestGetAnalysis_EmptyID(t *testing.T) {
	db := setupTestDB(t)
	_, err := GetAnalysis(db, "")
	assert.Error(t, err)
}

func TestPruneAnalyses(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	future := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
	n, err := PruneAnalyses(db, future)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	state, err := GetDataState(db)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Analyses)
}

func TestPruneAnalyses_EmptyBefore(t *testing.T) {
	db := setupTestDB(t)
	_, err := PruneAnalyses(db, "")
	assert.Error(t, err)
}

func TestGetDataState(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	state, err := GetDataState(db)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Analyses)
	assert.Equal(t, 1.0, state.MaxClarity)
	assert.InDelta(t, 0.52, state.MinClarity, 1e-9)
	assert.NotEmpty(t, state.Oldest)
	assert.NotEmpty(t, state.Newest)
}

func TestGetDataState_Empty(t *testing.T) {
	db := setupTestDB(t)
	state, err := GetDataState(db)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Analyses)
}
