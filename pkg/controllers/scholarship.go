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
	"okaziyo-api-io/api/pkg/posting"
	"okaziyo-api-io/api/pkg/util"
)

// ScholarshipController mirrors the job routes for scholarships.
type ScholarshipController struct {
	media *util.MediaService
}

func InitScholarshipController(media *util.MediaService) *ScholarshipController {
	return &ScholarshipController{media: media}
}

func (sc *ScholarshipController) GetScholarships() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		find := options.Find().SetSort(bson.M{"createdAt": -1})

		var scholarships []models.Scholarship
		if err := findAll(ctx, ScholarshipCollection, bson.M{}, find, &scholarships, "scholarships"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve scholarships")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Scholarships retrieved successfully", scholarships)
	}
}

func (sc *ScholarshipController) GetActiveScholarships() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		cutoff := posting.ArchiveCutoff(time.Now())
		find := options.Find().SetSort(bson.M{"createdAt": -1})

		var scholarships []models.Scholarship
		if err := findAll(ctx, ScholarshipCollection, bson.M{"deadline": bson.M{"$gt": cutoff}}, find, &scholarships, "scholarships"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve scholarships")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Active scholarships retrieved successfully", scholarships)
	}
}

func (sc *ScholarshipController) GetScholarshipsByCategory() gin.HandlerFunc {
	return sc.filteredScholarships("scholarships", func(c *gin.Context, cutoff time.Time) (bson.M, error) {
		id, err := objectIDParam(c)
		if err != nil {
			return nil, err
		}
		return bson.M{"category": id, "deadline": bson.M{"$gt": cutoff}}, nil
	})
}

func (sc *ScholarshipController) GetScholarshipsBySubCategory() gin.HandlerFunc {
	return sc.filteredScholarships("scholarships", func(c *gin.Context, cutoff time.Time) (bson.M, error) {
		return bson.M{"sub_category": c.Param("id"), "deadline": bson.M{"$gt": cutoff}}, nil
	})
}

func (sc *ScholarshipController) GetScholarshipArchives() gin.HandlerFunc {
	return sc.filteredScholarships("archivedScholarships", func(c *gin.Context, cutoff time.Time) (bson.M, error) {
		return bson.M{"deadline": bson.M{"$lte": cutoff}}, nil
	})
}

func (sc *ScholarshipController) filteredScholarships(key string, filterOf func(*gin.Context, time.Time) (bson.M, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		filter, err := filterOf(c, posting.ArchiveCutoff(time.Now()))
		if err != nil {
			util.HandleFailure(c, err, "Invalid id")
			return
		}

		total, err := ScholarshipCollection.CountDocuments(ctx, filter)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "scholarships"), "Failed to retrieve scholarships")
			return
		}

		page := posting.Paginate(total, posting.ListingPageSize, GetPageNo(c))

		find := options.Find().SetSort(bson.M{"createdAt": -1})
		if page.Paginated() {
			find.SetSkip(page.Skip).SetLimit(page.Limit)
		}

		var scholarships []models.Scholarship
		if err := findAll(ctx, ScholarshipCollection, filter, find, &scholarships, "scholarships"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve scholarships")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Scholarships retrieved successfully", gin.H{
			"totalPages": page.TotalPages,
			key:          scholarships,
		})
	}
}

func (sc *ScholarshipController) CreateScholarship() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.ScholarshipRequest
		if err := c.ShouldBind(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "There are missing info!")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "There are missing info!")
			return
		}

		var brandImage string
		if fileHeader, err := c.FormFile("brand_image"); err == nil {
			if err := util.CheckImage(fileHeader); err != nil {
				util.HandleFailure(c, err, err.Error())
				return
			}

			file, err := fileHeader.Open()
			if err != nil {
				util.HandleError(c, http.StatusBadRequest, err, "Failed to read brand image")
				return
			}
			defer file.Close()

			res, err := sc.media.Upload(ctx, file, fileHeader.Filename)
			if err != nil {
				util.HandleFailure(c, err, "Failed to upload brand image")
				return
			}
			brandImage = res.SecureURL
		}

		scholarship, err := models.NewScholarship(body, brandImage)
		if err != nil {
			if brandImage != "" {
				_ = sc.media.Destroy(ctx, brandImage)
			}
			util.HandleFailure(c, err, err.Error())
			return
		}

		if _, err := ScholarshipCollection.InsertOne(ctx, scholarship); err != nil {
			if brandImage != "" {
				_ = sc.media.Destroy(ctx, brandImage)
			}
			util.HandleFailure(c, apperr.FromMongo(err, "scholarship slug"), "A scholarship with this slug already exists")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateScholarship, scholarship.ID.Hex())
		util.HandleSuccess(c, http.StatusOK, "Scholarship created successfully", scholarship)
	}
}

func (sc *ScholarshipController) UpdateScholarship() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid scholarship id")
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

		var updated models.Scholarship
		err = ScholarshipCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": body}, opts).Decode(&updated)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "scholarship"), "Failed to update scholarship")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateScholarship, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Scholarship updated successfully", updated)
	}
}

func (sc *ScholarshipController) DeleteScholarship() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid scholarship id")
			return
		}

		var scholarship models.Scholarship
		err = ScholarshipCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&scholarship)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "scholarship"), "Scholarship is not found")
			return
		}

		if scholarship.BrandImage != "" {
			if err := sc.media.Destroy(ctx, scholarship.BrandImage); err != nil {
				util.HandleFailure(c, err, "Failed to delete brand image")
				return
			}
		}

		if _, err := ScholarshipCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "scholarship"), "Something went wrong while deleting")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateScholarship, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Scholarship deleted successfully", nil)
	}
}
