package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

func GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		find := options.Find().SetSort(bson.M{"date_registered": -1})

		var users []models.User
		if err := findAll(ctx, UserCollection, bson.M{}, find, &users, "users"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve users")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Users retrieved successfully", users)
	}
}

func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid user id")
			return
		}

		var user models.User
		err = UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "user"), "Failed to retrieve user")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "User retrieved successfully", user)
	}
}

func UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid user id")
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		delete(body, "_id")
		delete(body, "password_digest")

		var updated models.User

		// An empty $set is rejected by mongo; a bodyless update is a
		// no-op that returns the current document.
		if len(body) == 0 {
			err = UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&updated)
			if err != nil {
				util.HandleFailure(c, apperr.FromMongo(err, "user"), "Failed to update user")
				return
			}

			util.HandleSuccess(c, http.StatusOK, "User updated successfully", updated)
			return
		}

		after := options.After
		opts := options.FindOneAndUpdate().SetReturnDocument(after)

		err = UserCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": body}, opts).Decode(&updated)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "user"), "Failed to update user")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "User updated successfully", updated)
	}
}

func DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid user id")
			return
		}

		res, err := UserCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "user"), "Something went wrong while deleting")
			return
		}
		if res.DeletedCount == 0 {
			util.HandleFailure(c, apperr.NotFound("user"), "User is not found")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Deleted successfully", nil)
	}
}
