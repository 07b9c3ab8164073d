package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/posting"
)

// Job is a job posting. The slug is computed once here, when the
// posting is constructed; editing the title later does not recompute
// it.
type Job struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	BrandImage  string             `bson:"brand_image" json:"brand_image"`
	Markdown    string             `bson:"markdown" json:"markdown" validate:"required"`
	Slug        string             `bson:"slug" json:"slug" validate:"required"`
	Deadline    time.Time          `bson:"deadline" json:"deadline" validate:"required"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	Creator     primitive.ObjectID `bson:"creator,omitempty" json:"creator,omitempty"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	SubCategory string             `bson:"sub_category" json:"sub_category" validate:"required"`
}

type JobRequest struct {
	Title       string    `form:"title" validate:"required"`
	Brand       string    `form:"brand" validate:"required"`
	Markdown    string    `form:"markdown" validate:"required"`
	Deadline    time.Time `form:"deadline" time_format:"2006-01-02" validate:"required"`
	Category    string    `form:"category" validate:"required"`
	SubCategory string    `form:"sub_category" validate:"required"`
	Creator     string    `form:"creator"`
}

// NewJob builds a job posting from a validated request. The slug is a
// pure function of title and brand; an empty one (punctuation-only
// title) is rejected here instead of surfacing as a broken unique key
// at insert.
func NewJob(req JobRequest, brandImage string) (Job, error) {
	jobSlug := posting.Slug(req.Title, req.Brand)
	if jobSlug == "" {
		return Job{}, apperr.Validation("title yields an empty slug")
	}

	category, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return Job{}, apperr.Validation("invalid category id")
	}

	now := time.Now()
	job := Job{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Brand:       req.Brand,
		BrandImage:  brandImage,
		Markdown:    req.Markdown,
		Slug:        jobSlug,
		Deadline:    req.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
		Category:    category,
		SubCategory: req.SubCategory,
	}

	if req.Creator != "" {
		creator, err := primitive.ObjectIDFromHex(req.Creator)
		if err != nil {
			return Job{}, apperr.Validation("invalid creator id")
		}
		job.Creator = creator
	}

	return job, nil
}
