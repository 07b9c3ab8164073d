package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"okaziyo-api-io/api/internal"
	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

// GetCategories lists every category, oldest first.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var categories []models.Category
		find := options.Find().SetSort(bson.M{"date_created": 1})
		if err := findAll(ctx, CategoryCollection, bson.M{}, find, &categories, "categories"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve categories")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Categories retrieved successfully", categories)
	}
}

func GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid category id")
			return
		}

		var category models.Category
		err = CategoryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "category"), "Failed to retrieve category")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Category retrieved successfully", category)
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.CategoryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Please fill all the fields")
			return
		}

		category := models.Category{
			ID:          primitive.NewObjectID(),
			Title:       body.Title,
			Description: body.Description,
			DateCreated: time.Now(),
		}
		if body.Creator != "" {
			creator, err := primitive.ObjectIDFromHex(body.Creator)
			if err != nil {
				util.HandleError(c, http.StatusBadRequest, err, "Invalid creator id")
				return
			}
			category.Creator = creator
		}

		// The unique index on title turns a duplicate into a conflict.
		if _, err := CategoryCollection.InsertOne(ctx, category); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "category title"), "Category already exists")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateCategories, category.ID.Hex())
		util.HandleSuccess(c, http.StatusOK, "Category created", category)
	}
}

func UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid category id")
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		delete(body, "_id")

		var updated models.Category

		// An empty $set is rejected by mongo; a bodyless update is a
		// no-op that returns the current document.
		if len(body) == 0 {
			err = CategoryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&updated)
			if err != nil {
				util.HandleFailure(c, apperr.FromMongo(err, "category"), "Failed to update category")
				return
			}

			util.HandleSuccess(c, http.StatusOK, "Category updated successfully", updated)
			return
		}

		after := options.After
		opts := options.FindOneAndUpdate().SetReturnDocument(after)

		err = CategoryCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": body}, opts).Decode(&updated)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "category"), "Failed to update category")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateCategory, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Category updated successfully", updated)
	}
}

func DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid category id")
			return
		}

		res, err := CategoryCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "category"), "Failed to delete category")
			return
		}
		if res.DeletedCount == 0 {
			util.HandleFailure(c, apperr.NotFound("category"), "Category is not found")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateCategories, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Category deleted successfully", nil)
	}
}
