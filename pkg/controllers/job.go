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

// JobController owns the job posting routes.
type JobController struct {
	media *util.MediaService
}

func InitJobController(media *util.MediaService) *JobController {
	return &JobController{media: media}
}

func (jc *JobController) GetJobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		find := options.Find().SetSort(bson.M{"createdAt": -1})

		var jobs []models.Job
		if err := findAll(ctx, JobCollection, bson.M{}, find, &jobs, "jobs"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve jobs")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Jobs retrieved successfully", jobs)
	}
}

// GetActiveJobs lists jobs whose deadline is still inside the archive
// window. The cutoff is captured once per request.
func (jc *JobController) GetActiveJobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		cutoff := posting.ArchiveCutoff(time.Now())
		find := options.Find().SetSort(bson.M{"createdAt": -1})

		var jobs []models.Job
		if err := findAll(ctx, JobCollection, bson.M{"deadline": bson.M{"$gt": cutoff}}, find, &jobs, "jobs"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve jobs")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Active jobs retrieved successfully", jobs)
	}
}

func (jc *JobController) GetJobsByCategory() gin.HandlerFunc {
	return jc.filteredJobs("jobs", func(c *gin.Context, cutoff time.Time) (bson.M, error) {
		id, err := objectIDParam(c)
		if err != nil {
			return nil, err
		}
		return bson.M{"category": id, "deadline": bson.M{"$gt": cutoff}}, nil
	})
}

func (jc *JobController) GetJobsBySubCategory() gin.HandlerFunc {
	return jc.filteredJobs("jobs", func(c *gin.Context, cutoff time.Time) (bson.M, error) {
		return bson.M{"sub_category": c.Param("id"), "deadline": bson.M{"$gt": cutoff}}, nil
	})
}

// GetJobArchives pages through expired jobs. Archived means deadline
// on or before the cutoff, the complement of the active filter.
func (jc *JobController) GetJobArchives() gin.HandlerFunc {
	return jc.filteredJobs("archivedJobs", func(c *gin.Context, cutoff time.Time) (bson.M, error) {
		return bson.M{"deadline": bson.M{"$lte": cutoff}}, nil
	})
}

func (jc *JobController) filteredJobs(key string, filterOf func(*gin.Context, time.Time) (bson.M, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		filter, err := filterOf(c, posting.ArchiveCutoff(time.Now()))
		if err != nil {
			util.HandleFailure(c, err, "Invalid id")
			return
		}

		total, err := JobCollection.CountDocuments(ctx, filter)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "jobs"), "Failed to retrieve jobs")
			return
		}

		page := posting.Paginate(total, posting.ListingPageSize, GetPageNo(c))

		find := options.Find().SetSort(bson.M{"createdAt": -1})
		if page.Paginated() {
			find.SetSkip(page.Skip).SetLimit(page.Limit)
		}

		var jobs []models.Job
		if err := findAll(ctx, JobCollection, filter, find, &jobs, "jobs"); err != nil {
			util.HandleFailure(c, err, "Failed to retrieve jobs")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Jobs retrieved successfully", gin.H{
			"totalPages": page.TotalPages,
			key:          jobs,
		})
	}
}

// CreateJob uploads the brand image, builds the posting (slug included)
// and inserts it. A slug collision surfaces as a conflict.
func (jc *JobController) CreateJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.JobRequest
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

			res, err := jc.media.Upload(ctx, file, fileHeader.Filename)
			if err != nil {
				util.HandleFailure(c, err, "Failed to upload brand image")
				return
			}
			brandImage = res.SecureURL
		}

		job, err := models.NewJob(body, brandImage)
		if err != nil {
			if brandImage != "" {
				_ = jc.media.Destroy(ctx, brandImage)
			}
			util.HandleFailure(c, err, err.Error())
			return
		}

		if _, err := JobCollection.InsertOne(ctx, job); err != nil {
			if brandImage != "" {
				_ = jc.media.Destroy(ctx, brandImage)
			}
			util.HandleFailure(c, apperr.FromMongo(err, "job slug"), "A job with this slug already exists")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateJobs, job.ID.Hex())
		util.HandleSuccess(c, http.StatusOK, "Job created successfully", job)
	}
}

// UpdateJob applies a partial update. The slug is whatever was
// computed at creation; a later title edit does not touch it.
func (jc *JobController) UpdateJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid job id")
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

		var updated models.Job
		err = JobCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": body}, opts).Decode(&updated)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "job"), "Failed to update job")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateJob, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Job updated successfully", updated)
	}
}

func (jc *JobController) DeleteJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		id, err := objectIDParam(c)
		if err != nil {
			util.HandleFailure(c, err, "Invalid job id")
			return
		}

		var job models.Job
		err = JobCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "job"), "Job is not found")
			return
		}

		if job.BrandImage != "" {
			if err := jc.media.Destroy(ctx, job.BrandImage); err != nil {
				util.HandleFailure(c, err, "Failed to delete brand image")
				return
			}
		}

		if _, err := JobCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "job"), "Something went wrong while deleting")
			return
		}

		internal.PublishCacheMessage(c, internal.CacheInvalidateJobs, id.Hex())
		util.HandleSuccess(c, http.StatusOK, "Job deleted successfully", nil)
	}
}
