package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func putContext(t *testing.T, id primitive.ObjectID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Params = gin.Params{{Key: "id", Value: id.Hex()}}
	return c, recorder
}

func TestUpdateCategoryEmptyBody(t *testing.T) {
	// A {} body carries nothing to $set; the update degrades to a
	// fetch of the current document instead of an invalid command.
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("empty update returns the document unchanged", func(mt *mtest.T) {
		CategoryCollection = mt.Coll

		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "okaziyo.Category", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Scholarships"},
			{Key: "description", Value: "Funding opportunities"},
		}))

		c, recorder := putContext(mt.T, id, "{}")
		UpdateCategory()(c)

		assert.Equal(mt, http.StatusOK, recorder.Code)
		assert.Contains(mt, recorder.Body.String(), "Scholarships")
	})
}

func TestUpdateCategoryInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{}"))
	c.Params = gin.Params{{Key: "id", Value: "not-a-hex-id"}}

	UpdateCategory()(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
