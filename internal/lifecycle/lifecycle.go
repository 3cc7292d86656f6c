// Package lifecycle implements the status-transition operations on a single
// record: apply, reject, archive, favorite, delete and save.
package lifecycle

import (
	"database/sql"
	"strings"
	"time"

	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/dialog"
	"github.com/pwalczyk/jobtrack/internal/model"
)

// NoReasonSentinel marks "rejected without a reason" in the reject prompt.
const NoReasonSentinel = "."

// Ops bundles the dependencies every operation needs. Translate localizes
// the confirmation messages and may be nil; Now defaults to time.Now.
type Ops struct {
	DB        *sql.DB
	Prompter  dialog.Prompter
	Translate func(key string) string
	Now       func() time.Time
}

func (o Ops) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Ops) tr(key string) string {
	if o.Translate != nil {
		return o.Translate(key)
	}
	return key
}

// ToggleApplied flips appliedAt between null and now, after confirmation.
// Returns false without writing when the user cancels.
func (o Ops) ToggleApplied(app model.JobApplication) (bool, error) {
	msg := o.tr("list.markAsApplied")
	if app.AppliedAt != nil {
		msg = o.tr("list.undoApplicationStatus")
	}
	ok, err := o.Prompter.Confirm(msg)
	if err != nil || !ok {
		return false, err
	}

	update := db.StatusUpdate{SetApplied: true}
	if app.AppliedAt == nil {
		update.AppliedAt = model.TimePtr(o.now())
	}
	if err := db.UpdateApplicationStatus(o.DB, app.CreatedAt, update); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleRejected sets or clears rejectedAt. The first rejection of a record
// prompts for a free-text reason; the sentinel "." records the rejection with
// no reason. Once a rejection date or reason exists the toggle is a plain
// confirm-and-flip that leaves the stored reason alone.
func (o Ops) ToggleRejected(app model.JobApplication) (bool, error) {
	if app.RejectedAt == nil && app.RejectedReason == nil {
		reason, ok, err := o.Prompter.Prompt(o.tr("list.markAsRejected"))
		if err != nil || !ok {
			return false, err
		}
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return false, nil
		}

		update := db.StatusUpdate{SetRejected: true, RejectedAt: model.TimePtr(o.now())}
		if reason != NoReasonSentinel {
			update.SetReason = true
			update.RejectedReason = &reason
		}
		if err := db.UpdateApplicationStatus(o.DB, app.CreatedAt, update); err != nil {
			return false, err
		}
		return true, nil
	}

	msg := o.tr("list.markAsRejected")
	if app.RejectedAt != nil {
		msg = o.tr("list.undoRejectionStatus")
	}
	ok, err := o.Prompter.Confirm(msg)
	if err != nil || !ok {
		return false, err
	}

	update := db.StatusUpdate{SetRejected: true}
	if app.RejectedAt == nil {
		update.RejectedAt = model.TimePtr(o.now())
	}
	if err := db.UpdateApplicationStatus(o.DB, app.CreatedAt, update); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleArchived flips archivedAt between null and now, after confirmation.
func (o Ops) ToggleArchived(app model.JobApplication) (bool, error) {
	msg := o.tr("list.moveToArchive")
	if app.ArchivedAt != nil {
		msg = o.tr("list.restoreFromArchive")
	}
	ok, err := o.Prompter.Confirm(msg)
	if err != nil || !ok {
		return false, err
	}

	update := db.StatusUpdate{SetArchived: true}
	if app.ArchivedAt == nil {
		update.ArchivedAt = model.TimePtr(o.now())
	}
	if err := db.UpdateApplicationStatus(o.DB, app.CreatedAt, update); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleFavorite flips favoriteAt. Freely reversible, so no confirmation.
func (o Ops) ToggleFavorite(app model.JobApplication) (bool, error) {
	update := db.StatusUpdate{SetFavorite: true}
	if app.FavoriteAt == nil {
		update.FavoriteAt = model.TimePtr(o.now())
	}
	if err := db.UpdateApplicationStatus(o.DB, app.CreatedAt, update); err != nil {
		return false, err
	}
	return true, nil
}

// Delete permanently removes the record after confirmation.
func (o Ops) Delete(app model.JobApplication) (bool, error) {
	ok, err := o.Prompter.Confirm(o.tr("list.confirmDelete"))
	if err != nil || !ok {
		return false, err
	}
	if err := db.DeleteApplication(o.DB, app.CreatedAt); err != nil {
		return false, err
	}
	return true, nil
}

// Form carries the editable fields for Save. Nil pointers mean "not supplied
// by the form", preserving whatever the existing record holds.
type Form struct {
	Title       string
	Description string
	Location    string
	Tags        []string
	URL         string
	URL2        *string

	CreatedAt      *time.Time
	AppliedAt      *time.Time
	RejectedAt     *time.Time
	FavoriteAt     *time.Time
	RejectedReason string
}

// Save builds the full record from the form and stores it. For a new record
// the identity is the current time; when editing, the existing identity and
// status fields are preserved unless the form supplies replacements. An edit
// that changes the creation timestamp rekeys the record atomically.
func (o Ops) Save(form Form, existing *model.JobApplication) (model.JobApplication, error) {
	app := model.JobApplication{
		Title:       form.Title,
		Description: form.Description,
		Location:    strings.ToLower(form.Location),
		Tags:        form.Tags,
		URL:         form.URL,
		URL2:        form.URL2,
	}

	switch {
	case form.CreatedAt != nil:
		app.CreatedAt = *form.CreatedAt
	case existing != nil:
		app.CreatedAt = existing.CreatedAt
	default:
		app.CreatedAt = o.now()
	}

	app.AppliedAt = form.AppliedAt
	app.RejectedAt = form.RejectedAt
	app.FavoriteAt = form.FavoriteAt
	if reason := strings.TrimSpace(form.RejectedReason); reason != "" {
		app.RejectedReason = &reason
	}
	if existing != nil {
		if app.AppliedAt == nil {
			app.AppliedAt = existing.AppliedAt
		}
		if app.RejectedAt == nil {
			app.RejectedAt = existing.RejectedAt
		}
		if app.FavoriteAt == nil {
			app.FavoriteAt = existing.FavoriteAt
		}
		if app.RejectedReason == nil {
			app.RejectedReason = existing.RejectedReason
		}
		app.ArchivedAt = existing.ArchivedAt
	}

	if existing != nil && !existing.CreatedAt.Equal(app.CreatedAt) {
		if err := db.RekeyApplication(o.DB, existing.CreatedAt, app); err != nil {
			return app, err
		}
		return app, nil
	}
	if err := db.SaveApplication(o.DB, app); err != nil {
		return app, err
	}
	return app, nil
}
