package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level listing category. Sub-categories live
// embedded in the category document and are referenced from postings
// by their hex id as a raw string.
type Category struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Title         string             `bson:"title" json:"title" validate:"required"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	DateCreated   time.Time          `bson:"date_created" json:"date_created"`
	SubCategories []SubCategory      `bson:"sub_category" json:"sub_category"`
	Creator       primitive.ObjectID `bson:"creator,omitempty" json:"creator,omitempty"`
}

type SubCategory struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
	Creator     primitive.ObjectID `bson:"creator,omitempty" json:"creator,omitempty"`
}

type CategoryRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Creator     string `json:"creator"`
}
