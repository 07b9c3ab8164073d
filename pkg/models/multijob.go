package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/posting"
)

// Multijob is a combined post announcing several openings at once. It
// has no brand and no deadline; the slug comes from the title alone.
type Multijob struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Markdown  string             `bson:"markdown" json:"markdown" validate:"required"`
	Slug      string             `bson:"slug" json:"slug" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Creator   primitive.ObjectID `bson:"creator,omitempty" json:"creator,omitempty"`
}

type MultijobRequest struct {
	Title    string `json:"title" validate:"required"`
	Markdown string `json:"markdown" validate:"required"`
	Creator  string `json:"creator"`
}

func NewMultijob(req MultijobRequest) (Multijob, error) {
	multijobSlug := posting.Slug(req.Title, "")
	if multijobSlug == "" {
		return Multijob{}, apperr.Validation("title yields an empty slug")
	}

	now := time.Now()
	multijob := Multijob{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		Markdown:  req.Markdown,
		Slug:      multijobSlug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Creator != "" {
		creator, err := primitive.ObjectIDFromHex(req.Creator)
		if err != nil {
			return Multijob{}, apperr.Validation("invalid creator id")
		}
		multijob.Creator = creator
	}

	return multijob, nil
}
