package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"okaziyo-api-io/api/internal"
	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/posting"
	"okaziyo-api-io/api/pkg/util"
)

const maxItemPictures = 12

// ItemController owns the item routes. The media service is injected
// at startup rather than constructed per route module.
type ItemController struct {
	media *util.MediaService
}

func InitItemController(media *util.MediaService) *ItemController {
	return &ItemController{media: media}
}

// GetItems lists items newest first, optionally capped by ?limit.
func (ic *ItemController) GetItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		find := options.Find().SetSort(bson.M{"date_created": -1})
		if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
			find.SetLimit(limit)
		}

		var items []models.Item
		if err := findAll(ctx, ItemCollection, bson.M{}, find, &items, "items"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve items")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Items retrieved successfully", items)
	}
}

// GetItemsPagination serves the main item listing in pages of 18.
func (ic *ItemController) GetItemsPagination() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		total, err := ItemCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "items"), "Failed to retrieve items")
			return
		}

		page := posting.Paginate(total, posting.ItemsPageSize, GetPageNo(c))

		find := options.Find().SetSort(bson.M{"date_created": -1})
		if page.Paginated() {
			find.SetSkip(page.Skip).SetLimit(page.Limit)
		}

		var items []models.Item
		if err := findAll(ctx, ItemCollection, bson.M{}, find, &items, "items"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve items")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Items retrieved successfully", gin.H{
			"totalPages": page.TotalPages,
			"items":      items,
		})
	}
}

func (ic *ItemController) GetItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid item id")
			return
		}

		var item models.Item
		err = ItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "item"), "Failed to retrieve item")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Item retrieved successfully", item)
	}
}

// GetItemsByCategory pages through one category's items, 12 at a time.
func (ic *ItemController) GetItemsByCategory() gin.HandlerFunc {
	return ic.filteredItems(func(c *gin.Context) (bson.M, error) {
		id, err := objectIDParam(c)
		if err != nil {
			return nil, err
		}
		return bson.M{"category": id}, nil
	})
}

// GetItemsBySubCategory pages through one sub-category's items. The
// sub-category is matched as a raw string id.
func (ic *ItemController) GetItemsBySubCategory() gin.HandlerFunc {
	return ic.filteredItems(func(c *gin.Context) (bson.M, error) {
		return bson.M{"sub_category": c.Param("id")}, nil
	})
}

func (ic *ItemController) filteredItems(filterOf func(*gin.Context) (bson.M, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		filter, err := filterOf(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid id")
			return
		}

		total, err := ItemCollection.CountDocuments(ctx, filter)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "items"), "Failed to retrieve items")
			return
		}

		page := posting.Paginate(total, posting.ListingPageSize, GetPageNo(c))

		find := options.Find().SetSort(bson.M{"date_created": -1})
		if page.Paginated() {
			find.SetSkip(page.Skip).SetLimit(page.Limit)
		}

		var items []models.Item
		if err := findAll(ctx, ItemCollection, filter, find, &items, "items"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve items")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Items retrieved successfully", gin.H{
			"totalPages": page.TotalPages,
			"items":      items,
		})
	}
}

// CreateItem stores the pictures first, then the document; pictures
// already uploaded are destroyed again if the insert fails.
func (ic *ItemController) CreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.ItemRequest
		if err := c.ShouldBind(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "There are missing info!")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "There are missing info!")
			return
		}

		category, err := primitive.ObjectIDFromHex(body.Category)
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid category id")
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Failed to parse multipart form")
			return
		}

		files := form.File["pictures"]
		if len(files) > maxItemPictures {
			files = files[:maxItemPictures]
		}

		var pictures []string
		for _, fileHeader := range files {
			if err := util.CheckImage(fileHeader); err != nil {
				ic.destroyAll(ctx, pictures)
				util.HandleFailure(c, err, err.Error())
				return
			}

			file, err := fileHeader.Open()
			if err != nil {
				ic.destroyAll(ctx, pictures)
				util.HandleError(c, http.StatusBadRequest, err, "Failed to read uploaded picture")
				return
			}

			res, err := ic.media.Upload(ctx, file, fileHeader.Filename)
			file.Close()
			if err != nil {
				ic.destroyAll(ctx, pictures)
				util.HandleFailure(c, err, "Failed to upload picture")
				return
			}

			pictures = append(pictures, res.SecureURL)
		}

		item := models.Item{
			ID:            primitive.NewObjectID(),
			Title:         body.Title,
			Description:   body.Description,
			Brand:         body.Brand,
			Price:         body.Price,
			Pictures:      pictures,
			DateCreated:   time.Now(),
			Category:      category,
			SubCategory:   body.SubCategory,
			ContactNumber: body.ContactNumber,
		}
		if body.Creator != "" {
			creator, err := primitive.ObjectIDFromHex(body.Creator)
			if err != nil {
				ic.destroyAll(ctx, pictures)
				util.HandleError(c, http.StatusBadRequest, err, "Invalid creator id")
				return
			}
			item.Creator = creator
		}

		if _, err := ItemCollection.InsertOne(ctx, item); err != nil {
			ic.destroyAll(ctx, pictures)
			util.HandleFailure(c, apperr.FromMongo(err, "item"), "Something went wrong during creation")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateItems, item.ID.Hex())
		util.HandleSuccess(c, http.StatusOK, "Item created successfully", item)
	}
}

func (ic *ItemController) UpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid item id")
			return
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		delete(body, "_id")

		var updated models.Item

		// An empty $set is rejected by mongo; a bodyless update is a
		// no-op that returns the current document.
		if len(body) == 0 {
			err = ItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&updated)
			if err != nil {
				util.HandleFailure(c, apperr.FromMongo(err, "item"), "Failed to update item")
				return
			}

			util.HandleSuccess(c, http.StatusOK, "Item updated successfully", updated)
			return
		}

		after := options.After
		opts := options.FindOneAndUpdate().SetReturnDocument(after)

		err = ItemCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": body}, opts).Decode(&updated)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "item"), "Failed to update item")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateItem, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Item updated successfully", updated)
	}
}

// DeleteItem removes the stored pictures, keyed by the trailing path
// segment of each location, then the document.
func (ic *ItemController) DeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid item id")
			return
		}

		var item models.Item
		err = ItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "item"), "Item is not found")
			return
		}

		for _, location := range item.Pictures {
			if err := ic.media.Destroy(ctx, location); err != nil {
				util.HandleFailure(c, err, "Failed to delete item pictures")
				return
			}
		}

		if _, err := ItemCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "item"), "Something went wrong while deleting")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateItems, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Item deleted successfully", nil)
	}
}

func (ic *ItemController) destroyAll(ctx context.Context, locations []string) {
	for _, location := range locations {
		if err := ic.media.Destroy(ctx, location); err != nil {
			util.LogError("failed to destroy uploaded picture", err)
		}
	}
}
