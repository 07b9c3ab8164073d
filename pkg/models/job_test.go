package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"okaziyo-api-io/api/pkg/apperr"
)

func jobRequest() JobRequest {
	return JobRequest{
		Title:       "Backend Engineer",
		Brand:       "Acme",
		Markdown:    "We are hiring.",
		Deadline:    time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		Category:    primitive.NewObjectID().Hex(),
		SubCategory: primitive.NewObjectID().Hex(),
	}
}

func TestNewJobComputesSlug(t *testing.T) {
	job, err := NewJob(jobRequest(), "https://img.example/logo.png")
	require.NoError(t, err)

	assert.Equal(t, "backend-engineer-at-acme", job.Slug)
	assert.Equal(t, "https://img.example/logo.png", job.BrandImage)
	assert.False(t, job.ID.IsZero())
	assert.False(t, job.CreatedAt.IsZero())
	assert.Equal(t, job.CreatedAt, job.UpdatedAt)
}

func TestNewMultijobEmptySlugRejected(t *testing.T) {
	// A punctuation-only title strips down to nothing; reject it as a
	// validation error instead of letting an empty unique key reach
	// the collection.
	_, err := NewMultijob(MultijobRequest{Title: "???", Markdown: "body"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestNewJobInvalidCategory(t *testing.T) {
	req := jobRequest()
	req.Category = "not-a-hex-id"

	_, err := NewJob(req, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestNewJobOptionalCreator(t *testing.T) {
	req := jobRequest()
	req.Creator = primitive.NewObjectID().Hex()

	job, err := NewJob(req, "")
	require.NoError(t, err)
	assert.False(t, job.Creator.IsZero())

	req.Creator = "bogus"
	_, err = NewJob(req, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestNewScholarshipSharesSlugRule(t *testing.T) {
	scholarship, err := NewScholarship(ScholarshipRequest{
		Title:       "Graduate Fellowship",
		Brand:       "Acme Foundation",
		Markdown:    "Apply now.",
		Deadline:    time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
		Category:    primitive.NewObjectID().Hex(),
		SubCategory: primitive.NewObjectID().Hex(),
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "graduate-fellowship-at-acme-foundation", scholarship.Slug)
}

func TestNewMultijobSlugFromTitleOnly(t *testing.T) {
	multijob, err := NewMultijob(MultijobRequest{
		Title:    "Weekly Openings Digest",
		Markdown: "Several roles inside.",
	})
	require.NoError(t, err)

	assert.Equal(t, "weekly-openings-digest", multijob.Slug)
}
