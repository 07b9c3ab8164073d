package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a classifieds listing. Category is an id reference; the
// sub-category is a raw string id into the embedded sub-category array
// of the category document and is not validated as a reference.
type Item struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Title         string             `bson:"title" json:"title" validate:"required"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	Brand         string             `bson:"brand" json:"brand" validate:"required"`
	Price         string             `bson:"price" json:"price" validate:"required"`
	Pictures      []string           `bson:"pictures" json:"pictures"`
	DateCreated   time.Time          `bson:"date_created" json:"date_created"`
	Category      primitive.ObjectID `bson:"category" json:"category"`
	SubCategory   string             `bson:"sub_category" json:"sub_category" validate:"required"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber" validate:"required,min=10,max=13"`
	Creator       primitive.ObjectID `bson:"creator,omitempty" json:"creator,omitempty"`
}

// ItemRequest carries the multipart form fields of an item posting;
// pictures arrive as files alongside it.
type ItemRequest struct {
	Title         string `form:"title" validate:"required"`
	Description   string `form:"description" validate:"required"`
	Brand         string `form:"brand" validate:"required"`
	Price         string `form:"price" validate:"required"`
	Category      string `form:"category" validate:"required"`
	SubCategory   string `form:"sub_category" validate:"required"`
	ContactNumber string `form:"contactNumber" validate:"required,min=10,max=13"`
	Creator       string `form:"creator"`
}
