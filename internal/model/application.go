package model

import (
	"sort"
	"strings"
	"time"
)

// Display formats for timestamps. DisplayDate is the bare-date form the
// calendar emits, so a calendar day can be pasted straight into search.
const (
	DisplayDateTime = "2006.01.02 15:04"
	DisplayDate     = "2006.01.02"
)

// Status buckets for a single application. Rejection wins over applied.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusRejected Status = "rejected"
)

// JobApplication is the sole persisted entity, keyed by CreatedAt.
// The JSON shape matches the export format: nullable fields are pointers
// with omitempty, so marshalling strips nulls.
type JobApplication struct {
	CreatedAt      time.Time  `json:"createdAt"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	URL            string     `json:"url,omitempty"`
	URL2           *string    `json:"url2,omitempty"`
	AppliedAt      *time.Time `json:"appliedAt,omitempty"`
	RejectedAt     *time.Time `json:"rejectedAt,omitempty"`
	RejectedReason *string    `json:"rejectedReason,omitempty"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	FavoriteAt     *time.Time `json:"favoriteAt,omitempty"`
}

// Archived reports whether the record belongs to the archived view.
// ArchivedAt nullity is the only source of truth for this.
func (a JobApplication) Archived() bool { return a.ArchivedAt != nil }

// Favorite reports whether the record is favorited.
func (a JobApplication) Favorite() bool { return a.FavoriteAt != nil }

// Status classifies the record into exactly one calendar bucket.
func (a JobApplication) Status() Status {
	switch {
	case a.RejectedAt != nil:
		return StatusRejected
	case a.AppliedAt != nil:
		return StatusSent
	default:
		return StatusPending
	}
}

// SortedTags returns the tags in display order without mutating the record.
func (a JobApplication) SortedTags() []string {
	out := append([]string(nil), a.Tags...)
	sort.Strings(out)
	return out
}

// ParseTags splits a comma separated tag string into the stored form:
// trimmed, lowercased, empties dropped, duplicates suppressed.
func ParseTags(s string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, t := range strings.Split(s, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// JoinTags is the inverse of ParseTags for storage and display.
func JoinTags(tags []string) string { return strings.Join(tags, ", ") }

// TimePtr is a convenience for building nullable timestamps.
func TimePtr(t time.Time) *time.Time { return &t }

// StringPtr is a convenience for building nullable strings.
func StringPtr(s string) *string { return &s }
