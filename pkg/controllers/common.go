package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/util"
)

// Database collections
var (
	CategoryCollection    = util.GetCollection(util.DB, "Category")
	ItemCollection        = util.GetCollection(util.DB, "Item")
	JobCollection         = util.GetCollection(util.DB, "Job")
	ScholarshipCollection = util.GetCollection(util.DB, "Scholarship")
	MultijobCollection    = util.GetCollection(util.DB, "Multijob")
	UserCollection        = util.GetCollection(util.DB, "User")
	SubscriberCollection  = util.GetCollection(util.DB, "Subscriber")
	ResetTokenCollection  = util.GetCollection(util.DB, "PasswordResetToken")

	Validate = validator.New()
)

const RequestTimeout = 30 * time.Second

func Ping(c *gin.Context) {
	util.HandleSuccess(c, http.StatusOK, "pong", nil)
}

// GetPageNo reads the requested page number; absent or malformed means
// no pagination.
func GetPageNo(c *gin.Context) int64 {
	pageNo, err := strconv.ParseInt(c.DefaultQuery("pageNo", "0"), 10, 64)
	if err != nil {
		return 0
	}
	return pageNo
}

// objectIDParam parses the :id path parameter.
func objectIDParam(c *gin.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid id")
	}
	return id, nil
}

func optionsUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}

// findAll runs a filtered find and decodes every document into out.
func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, out interface{}, what string) error {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return apperr.FromMongo(err, what)
	}

	if err := cursor.All(ctx, out); err != nil {
		return apperr.FromMongo(err, what)
	}

	return nil
}
