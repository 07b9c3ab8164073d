package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Subscriber struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	DateSubscribed time.Time          `bson:"date_subscribed" json:"date_subscribed"`
}

type SubscriberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
