package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"okaziyo-api-io/api/internal"
	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

func GetMultijobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		find := options.Find().SetSort(bson.M{"createdAt": -1})

		var multijobs []models.Multijob
		if err := findAll(ctx, MultijobCollection, bson.M{}, find, &multijobs, "multijobs"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve multijobs")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Multijobs retrieved successfully", multijobs)
	}
}

func GetMultijob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid multijob id")
			return
		}

		var multijob models.Multijob
		err = MultijobCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&multijob)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "multijob"), "Failed to retrieve multijob")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Multijob retrieved successfully", multijob)
	}
}

func CreateMultijob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.MultijobRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "There are missing info!")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "There are missing info!")
			return
		}

		multijob, err := models.NewMultijob(body)
		if err != nil {
			util.HandleFailure(c, err, err.Error())
			return
		}

		if _, err := MultijobCollection.InsertOne(ctx, multijob); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "multijob slug"), "A multijob with this slug already exists")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateMultijob, multijob.ID.Hex())
		util.HandleSuccess(c, http.StatusOK, "Multijob created successfully", multijob)
	}
}

func UpdateMultijob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid multijob id")
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		delete(body, "_id")
		delete(body, "slug")
		body["updatedAt"] = time.Now()

		after := options.After
		opts := options.FindOneAndUpdate().SetReturnDocument(after)

		var updated models.Multijob
		err = MultijobCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": body}, opts).Decode(&updated)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "multijob"), "Failed to update multijob")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateMultijob, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Multijob updated successfully", updated)
	}
}

func DeleteMultijob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid multijob id")
			return
		}

		res, err := MultijobCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "multijob"), "Something went wrong while deleting")
			return
		}
		if res.DeletedCount == 0 {
			util.HandleFailure(c, apperr.NotFound("multijob"), "Multijob is not found")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateMultijob, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Multijob deleted successfully", nil)
	}
}
