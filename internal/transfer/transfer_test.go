package transfer_test

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/model"
	"github.com/pwalczyk/jobtrack/internal/transfer"
)

type fixedPrompter struct {
	answer bool
	calls  int
}

func (p *fixedPrompter) Confirm(string) (bool, error) {
	p.calls++
	return p.answer, nil
}

func (p *fixedPrompter) Prompt(string) (string, bool, error) {
	return "", false, nil
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := db.OpenPath(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestDB(t)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	reason := "no reply"
	app := model.JobApplication{
		CreatedAt:      created,
		Title:          "Backend Engineer",
		Location:       "berlin",
		Tags:           []string{"go", "backend"},
		URL:            "https://example.com/job",
		AppliedAt:      model.TimePtr(created.AddDate(0, 0, 2)),
		RejectedAt:     model.TimePtr(created.AddDate(0, 0, 20)),
		RejectedReason: &reason,
	}
	require.NoError(t, db.SaveApplication(src, app))
	require.NoError(t, db.SaveApplication(src, model.JobApplication{
		CreatedAt: created.AddDate(0, 0, 1),
		Title:     "Frontend Engineer",
	}))

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(src, &buf))

	dst := openTestDB(t)
	res, err := transfer.Import(dst, &buf, &fixedPrompter{})
	require.NoError(t, err)
	assert.Equal(t, transfer.Result{Imported: 2}, res)

	got, err := db.GetApplication(dst, created)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, []string{"go", "backend"}, got.Tags)
	require.NotNil(t, got.RejectedReason)
	assert.Equal(t, "no reply", *got.RejectedReason)
}

func TestExportEmptyStoreIsAnEmptyArray(t *testing.T) {
	dbh := openTestDB(t)
	var buf bytes.Buffer
	require.NoError(t, transfer.Export(dbh, &buf))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestExportStripsNullFields(t *testing.T) {
	dbh := openTestDB(t)
	require.NoError(t, db.SaveApplication(dbh, model.JobApplication{
		CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		Title:     "x",
	}))

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(dbh, &buf))
	out := buf.String()
	assert.NotContains(t, out, "appliedAt")
	assert.NotContains(t, out, "rejectedReason")
	assert.NotContains(t, out, "null")
}

func TestImportDeclinedOverwriteIsCountedAsSkipped(t *testing.T) {
	dbh := openTestDB(t)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveApplication(dbh, model.JobApplication{
		CreatedAt: created,
		Title:     "original",
	}))

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(dbh, &buf))
	payload := strings.Replace(buf.String(), "original", "replacement", 1)

	p := &fixedPrompter{answer: false}
	res, err := transfer.Import(dbh, strings.NewReader(payload), p)
	require.NoError(t, err)
	assert.Equal(t, transfer.Result{Skipped: 1}, res)
	assert.Equal(t, 1, p.calls)

	got, err := db.GetApplication(dbh, created)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestImportAcceptedOverwriteReplacesRecord(t *testing.T) {
	dbh := openTestDB(t)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveApplication(dbh, model.JobApplication{
		CreatedAt: created,
		Title:     "original",
	}))

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(dbh, &buf))
	payload := strings.Replace(buf.String(), "original", "replacement", 1)

	res, err := transfer.Import(dbh, strings.NewReader(payload), &fixedPrompter{answer: true})
	require.NoError(t, err)
	assert.Equal(t, transfer.Result{Imported: 1}, res)

	got, err := db.GetApplication(dbh, created)
	require.NoError(t, err)
	assert.Equal(t, "replacement", got.Title)
}

func TestImportMalformedPayloadWritesNothing(t *testing.T) {
	dbh := openTestDB(t)

	_, err := transfer.Import(dbh, strings.NewReader(`{"not": "an array"`), &fixedPrompter{})
	require.Error(t, err)

	apps, err := db.GetAllApplications(dbh)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestExportToFile(t *testing.T) {
	dbh := openTestDB(t)
	require.NoError(t, db.SaveApplication(dbh, model.JobApplication{
		CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		Title:     "x",
	}))

	path := filepath.Join(t.TempDir(), transfer.DefaultExportName)
	require.NoError(t, transfer.ExportToFile(dbh, path))

	dst := openTestDB(t)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	res, err := transfer.Import(dst, f, &fixedPrompter{})
	require.NoError(t, err)
	assert.Equal(t, transfer.Result{Imported: 1}, res)
}
