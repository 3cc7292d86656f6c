package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := db.OpenPath(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func sampleApp(created time.Time) model.JobApplication {
	return model.JobApplication{
		CreatedAt:   created,
		Title:       "Backend Engineer",
		Description: "Go services",
		Location:    "berlin",
		Tags:        []string{"go", "backend"},
		URL:         "https://example.com/job",
	}
}

func TestSaveApplicationIsIdempotent(t *testing.T) {
	dbh := openTestDB(t)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	app := sampleApp(created)

	require.NoError(t, db.SaveApplication(dbh, app))
	require.NoError(t, db.SaveApplication(dbh, app))

	apps, err := db.GetAllApplications(dbh)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.True(t, apps[0].CreatedAt.Equal(created))
	assert.Equal(t, "Backend Engineer", apps[0].Title)
	assert.Equal(t, []string{"go", "backend"}, apps[0].Tags)
}

func TestSaveApplicationOverwritesSameKey(t *testing.T) {
	dbh := openTestDB(t)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveApplication(dbh, sampleApp(created)))

	changed := sampleApp(created)
	changed.Title = "Platform Engineer"
	require.NoError(t, db.SaveApplication(dbh, changed))

	got, err := db.GetApplication(dbh, created)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", got.Title)
}

func TestUpdateStatusTouchesOnlyNamedFields(t *testing.T) {
	dbh := openTestDB(t)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveApplication(dbh, sampleApp(created)))

	applied := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)
	err := db.UpdateApplicationStatus(dbh, created, db.StatusUpdate{
		SetApplied: true,
		AppliedAt:  &applied,
	})
	require.NoError(t, err)

	got, err := db.GetApplication(dbh, created)
	require.NoError(t, err)
	require.NotNil(t, got.AppliedAt)
	assert.True(t, got.AppliedAt.Equal(applied))
	assert.Nil(t, got.RejectedAt)
	assert.Equal(t, "Backend Engineer", got.Title)

	// clearing uses the same path with a nil value
	err = db.UpdateApplicationStatus(dbh, created, db.StatusUpdate{SetApplied: true})
	require.NoError(t, err)
	got, err = db.GetApplication(dbh, created)
	require.NoError(t, err)
	assert.Nil(t, got.AppliedAt)
}

func TestUpdateStatusMissingKeyFails(t *testing.T) {
	dbh := openTestDB(t)
	err := db.UpdateApplicationStatus(dbh, time.Now(), db.StatusUpdate{SetApplied: true})
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	dbh := openTestDB(t)
	assert.NoError(t, db.DeleteApplication(dbh, time.Now()))
}

func TestRekeyMovesIdentityAtomically(t *testing.T) {
	dbh := openTestDB(t)
	oldKey := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	newKey := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveApplication(dbh, sampleApp(oldKey)))

	moved := sampleApp(newKey)
	require.NoError(t, db.RekeyApplication(dbh, oldKey, moved))

	_, err := db.GetApplication(dbh, oldKey)
	assert.ErrorIs(t, err, db.ErrNotFound)

	got, err := db.GetApplication(dbh, newKey)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)

	apps, err := db.GetAllApplications(dbh)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestRekeySameKeyKeepsRecord(t *testing.T) {
	dbh := openTestDB(t)
	key := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveApplication(dbh, sampleApp(key)))

	same := sampleApp(key)
	same.Title = "Renamed"
	require.NoError(t, db.RekeyApplication(dbh, key, same))

	got, err := db.GetApplication(dbh, key)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestOpenStampsSchemaVersion(t *testing.T) {
	dbh := openTestDB(t)
	var version int
	require.NoError(t, dbh.QueryRow(`PRAGMA user_version`).Scan(&version))
	assert.Equal(t, db.SchemaVersion, version)
}

func TestOpenLegacyLayoutRequiresConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	dbh, err := db.OpenPath(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.SaveApplication(dbh, sampleApp(time.Now().UTC())))
	_, err = dbh.Exec(`PRAGMA user_version = 2`)
	require.NoError(t, err)
	require.NoError(t, dbh.Close())

	// declining leaves the old data in place
	_, err = db.OpenPath(path, func(string) (bool, error) { return false, nil })
	assert.ErrorIs(t, err, db.ErrRebuildDeclined)

	// accepting rebuilds an empty current-version store
	dbh, err = db.OpenPath(path, func(string) (bool, error) { return true, nil })
	require.NoError(t, err)
	defer dbh.Close()

	apps, err := db.GetAllApplications(dbh)
	require.NoError(t, err)
	assert.Empty(t, apps)

	var version int
	require.NoError(t, dbh.QueryRow(`PRAGMA user_version`).Scan(&version))
	assert.Equal(t, db.SchemaVersion, version)
}

func TestCountAwaitingReply(t *testing.T) {
	dbh := openTestDB(t)
	now := time.Now().UTC()

	old := sampleApp(now.AddDate(0, 0, -30))
	old.AppliedAt = model.TimePtr(now.AddDate(0, 0, -30))
	require.NoError(t, db.SaveApplication(dbh, old))

	fresh := sampleApp(now.AddDate(0, 0, -2))
	fresh.AppliedAt = model.TimePtr(now.AddDate(0, 0, -2))
	require.NoError(t, db.SaveApplication(dbh, fresh))

	rejected := sampleApp(now.AddDate(0, 0, -40))
	rejected.AppliedAt = model.TimePtr(now.AddDate(0, 0, -40))
	rejected.RejectedAt = model.TimePtr(now.AddDate(0, 0, -10))
	require.NoError(t, db.SaveApplication(dbh, rejected))

	n, err := db.CountAwaitingReply(dbh, now.AddDate(0, 0, -14))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
