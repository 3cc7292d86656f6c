package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pwalczyk/jobtrack/internal/model"
)

// ErrNotFound is returned when a status update targets a missing record.
var ErrNotFound = errors.New("application not found")

// StatusUpdate lists the nullable fields a partial update overwrites. A false
// Set flag leaves the stored value untouched; a true flag with a nil value
// clears the column. Everything outside this set stays as it is.
type StatusUpdate struct {
	SetApplied bool
	AppliedAt  *time.Time

	SetRejected bool
	RejectedAt  *time.Time

	SetReason      bool
	RejectedReason *string

	SetArchived bool
	ArchivedAt  *time.Time

	SetFavorite bool
	FavoriteAt  *time.Time
}

// Key renders a timestamp in the canonical primary-key form.
func Key(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseKey(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// fallback for RFC3339 without nanos
		t, err = time.Parse(time.RFC3339, s)
	}
	return t, err
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return Key(*t)
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

const selectColumns = `created_at, title, description, location, tags, url, url2,
	applied_at, rejected_at, rejected_reason, archived_at, favorite_at`

func scanApplication(row interface{ Scan(...any) error }) (model.JobApplication, error) {
	var app model.JobApplication
	var createdAt, tags string
	var url2, rejectedReason sql.NullString
	var appliedAt, rejectedAt, archivedAt, favoriteAt sql.NullString

	err := row.Scan(
		&createdAt, &app.Title, &app.Description, &app.Location, &tags, &app.URL,
		&url2, &appliedAt, &rejectedAt, &rejectedReason, &archivedAt, &favoriteAt,
	)
	if err != nil {
		return app, err
	}

	if app.CreatedAt, err = parseKey(createdAt); err != nil {
		return app, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	app.Tags = model.ParseTags(tags)
	if url2.Valid {
		app.URL2 = &url2.String
	}
	if rejectedReason.Valid {
		app.RejectedReason = &rejectedReason.String
	}

	for _, f := range []struct {
		col string
		src sql.NullString
		dst **time.Time
	}{
		{"applied_at", appliedAt, &app.AppliedAt},
		{"rejected_at", rejectedAt, &app.RejectedAt},
		{"archived_at", archivedAt, &app.ArchivedAt},
		{"favorite_at", favoriteAt, &app.FavoriteAt},
	} {
		if !f.src.Valid {
			continue
		}
		t, err := parseKey(f.src.String)
		if err != nil {
			return app, fmt.Errorf("bad %s %q: %w", f.col, f.src.String, err)
		}
		*f.dst = &t
	}

	return app, nil
}

// GetAllApplications returns every stored record. Order is unspecified;
// callers sort.
func GetAllApplications(dbh *sql.DB) ([]model.JobApplication, error) {
	rows, err := dbh.Query(`SELECT ` + selectColumns + ` FROM applications`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []model.JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// GetApplication returns one record by its creation timestamp, or ErrNotFound.
func GetApplication(dbh *sql.DB, createdAt time.Time) (model.JobApplication, error) {
	row := dbh.QueryRow(`SELECT `+selectColumns+` FROM applications WHERE created_at = ?`, Key(createdAt))
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return app, ErrNotFound
	}
	return app, err
}

// SaveApplication inserts the record, or fully overwrites an existing record
// with the same creation timestamp. Idempotent.
func SaveApplication(dbh *sql.DB, app model.JobApplication) error {
	_, err := dbh.Exec(`
		INSERT OR REPLACE INTO applications
			(created_at, title, description, location, tags, url, url2,
			 applied_at, rejected_at, rejected_reason, archived_at, favorite_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		Key(app.CreatedAt), app.Title, app.Description, app.Location,
		model.JoinTags(app.Tags), app.URL, nullString(app.URL2),
		nullTime(app.AppliedAt), nullTime(app.RejectedAt), nullString(app.RejectedReason),
		nullTime(app.ArchivedAt), nullTime(app.FavoriteAt),
	)
	return err
}

// UpdateApplicationStatus overwrites only the fields the update names,
// leaving the rest of the record untouched. Updating a missing key fails
// with ErrNotFound.
func UpdateApplicationStatus(dbh *sql.DB, createdAt time.Time, update StatusUpdate) error {
	var sets []string
	var args []any

	if update.SetApplied {
		sets = append(sets, "applied_at = ?")
		args = append(args, nullTime(update.AppliedAt))
	}
	if update.SetRejected {
		sets = append(sets, "rejected_at = ?")
		args = append(args, nullTime(update.RejectedAt))
	}
	if update.SetReason {
		sets = append(sets, "rejected_reason = ?")
		args = append(args, nullString(update.RejectedReason))
	}
	if update.SetArchived {
		sets = append(sets, "archived_at = ?")
		args = append(args, nullTime(update.ArchivedAt))
	}
	if update.SetFavorite {
		sets = append(sets, "favorite_at = ?")
		args = append(args, nullTime(update.FavoriteAt))
	}
	if len(sets) == 0 {
		return fmt.Errorf("nothing to update")
	}

	args = append(args, Key(createdAt))
	res, err := dbh.Exec(
		`UPDATE applications SET `+strings.Join(sets, ", ")+` WHERE created_at = ?`,
		args...,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteApplication removes the record. Deleting a missing key is a no-op.
func DeleteApplication(dbh *sql.DB, createdAt time.Time) error {
	_, err := dbh.Exec(`DELETE FROM applications WHERE created_at = ?`, Key(createdAt))
	return err
}

// RekeyApplication saves the record under its (possibly changed) creation
// timestamp and removes the old key in the same transaction, so an edit that
// changes the identity cannot leave a duplicate behind.
func RekeyApplication(dbh *sql.DB, oldCreatedAt time.Time, app model.JobApplication) error {
	tx, err := dbh.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO applications
			(created_at, title, description, location, tags, url, url2,
			 applied_at, rejected_at, rejected_reason, archived_at, favorite_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		Key(app.CreatedAt), app.Title, app.Description, app.Location,
		model.JoinTags(app.Tags), app.URL, nullString(app.URL2),
		nullTime(app.AppliedAt), nullTime(app.RejectedAt), nullString(app.RejectedReason),
		nullTime(app.ArchivedAt), nullTime(app.FavoriteAt),
	)
	if err != nil {
		return err
	}

	if !app.CreatedAt.Equal(oldCreatedAt) {
		if _, err := tx.Exec(`DELETE FROM applications WHERE created_at = ?`, Key(oldCreatedAt)); err != nil {
			return err
		}
	}

	committed = true
	return tx.Commit()
}

// CountAwaitingReply counts active applications that were sent before the
// cutoff and have not been rejected since. Drives the follow-up reminder.
func CountAwaitingReply(dbh *sql.DB, cutoff time.Time) (int, error) {
	var n int
	err := dbh.QueryRow(`
		SELECT COUNT(1) FROM applications
		WHERE applied_at IS NOT NULL AND applied_at < ?
		  AND rejected_at IS NULL AND archived_at IS NULL`,
		Key(cutoff),
	).Scan(&n)
	return n, err
}
