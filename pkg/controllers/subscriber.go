package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"okaziyo-api-io/api/email"
	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

// SubscriberController manages the mailing list. The mail pool is
// injected so subscription never blocks on SMTP.
type SubscriberController struct {
	mail *email.WorkerPool
}

func InitSubscriberController(mail *email.WorkerPool) *SubscriberController {
	return &SubscriberController{mail: mail}
}

func (sc *SubscriberController) GetSubscribers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		find := options.Find().SetSort(bson.M{"date_subscribed": -1})

		var subscribers []models.Subscriber
		if err := findAll(ctx, SubscriberCollection, bson.M{}, find, &subscribers, "subscribers"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve subscribers")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Subscribers retrieved successfully", subscribers)
	}
}

func (sc *SubscriberController) CreateSubscriber() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.SubscriberRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Please fill all the fields")
			return
		}

		subscriber := models.Subscriber{
			ID:             primitive.NewObjectID(),
			Name:           body.Name,
			Email:          body.Email,
			DateSubscribed: time.Now(),
		}

		if _, err := SubscriberCollection.InsertOne(ctx, subscriber); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "subscriber email"), "This email is already subscribed")
			return
		}

		sc.mail.Enqueue(email.Job{
			Type: email.JobWelcome,
			Data: email.Data{Email: subscriber.Email, Name: subscriber.Name},
		})

		util.HandleSuccess(c, http.StatusOK, "Subscribed successfully", subscriber)
	}
}

func (sc *SubscriberController) DeleteSubscriber() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid subscriber id")
			return
		}

		res, err := SubscriberCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "subscriber"), "Something went wrong while deleting")
			return
		}
		if res.DeletedCount == 0 {
			util.HandleFailure(c, apperr.NotFound("subscriber"), "Subscriber is not found")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Unsubscribed successfully", nil)
	}
}
