package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalczyk/jobtrack/internal/model"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"normalizes case and spacing", " Go , Backend,  REMOTE ", []string{"go", "backend", "remote"}},
		{"drops empties and duplicates", "go,,go, ,GO", []string{"go"}},
		{"empty input", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.ParseTags(tc.in))
		})
	}
}

func TestStatusClassification(t *testing.T) {
	now := time.Now()

	pending := model.JobApplication{Title: "a"}
	sent := model.JobApplication{Title: "b", AppliedAt: model.TimePtr(now)}
	rejected := model.JobApplication{Title: "c", RejectedAt: model.TimePtr(now)}
	// applied then later rejected: rejection wins
	both := model.JobApplication{Title: "d", AppliedAt: model.TimePtr(now), RejectedAt: model.TimePtr(now)}

	assert.Equal(t, model.StatusPending, pending.Status())
	assert.Equal(t, model.StatusSent, sent.Status())
	assert.Equal(t, model.StatusRejected, rejected.Status())
	assert.Equal(t, model.StatusRejected, both.Status())
}

func TestArchivedIsDerivedFromArchivedAt(t *testing.T) {
	app := model.JobApplication{Title: "x"}
	assert.False(t, app.Archived())
	app.ArchivedAt = model.TimePtr(time.Now())
	assert.True(t, app.Archived())
}

func TestJSONStripsNullsAndRestoresThem(t *testing.T) {
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	app := model.JobApplication{
		CreatedAt: created,
		Title:     "Backend Engineer",
		Tags:      []string{"go"},
	}

	data, err := json.Marshal(app)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "appliedAt")
	assert.NotContains(t, string(data), "url2")
	assert.NotContains(t, string(data), "rejectedReason")

	var back model.JobApplication
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.CreatedAt.Equal(created))
	assert.Nil(t, back.AppliedAt)
	assert.Nil(t, back.URL2)
	assert.Equal(t, app.Title, back.Title)
}

func TestSortedTagsDoesNotMutate(t *testing.T) {
	app := model.JobApplication{Tags: []string{"z", "a"}}
	assert.Equal(t, []string{"a", "z"}, app.SortedTags())
	assert.Equal(t, []string{"z", "a"}, app.Tags)
}
