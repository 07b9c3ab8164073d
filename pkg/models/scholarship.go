package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/posting"
)

// Scholarship shares the job posting shape: sponsored by a brand, slug
// derived from title and brand, partitioned into active and archived
// by its deadline.
type Scholarship struct {
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

type ScholarshipRequest struct {
	Title       string    `form:"title" validate:"required"`
	Brand       string    `form:"brand" validate:"required"`
	Markdown    string    `form:"markdown" validate:"required"`
	Deadline    time.Time `form:"deadline" time_format:"2006-01-02" validate:"required"`
	Category    string    `form:"category" validate:"required"`
	SubCategory string    `form:"sub_category" validate:"required"`
	Creator     string    `form:"creator"`
}

func NewScholarship(req ScholarshipRequest, brandImage string) (Scholarship, error) {
	scholarshipSlug := posting.Slug(req.Title, req.Brand)
	if scholarshipSlug == "" {
		return Scholarship{}, apperr.Validation("title yields an empty slug")
	}

	category, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return Scholarship{}, apperr.Validation("invalid category id")
	}

	now := time.Now()
	scholarship := Scholarship{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Brand:       req.Brand,
		BrandImage:  brandImage,
		Markdown:    req.Markdown,
		Slug:        scholarshipSlug,
		Deadline:    req.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
		Category:    category,
		SubCategory: req.SubCategory,
	}

	if req.Creator != "" {
		creator, err := primitive.ObjectIDFromHex(req.Creator)
		if err != nil {
			return Scholarship{}, apperr.Validation("invalid creator id")
		}
		scholarship.Creator = creator
	}

	return scholarship, nil
}
