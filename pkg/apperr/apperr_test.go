package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("missing title"), http.StatusBadRequest},
		{NotFound("job"), http.StatusNotFound},
		{errors.Wrap(ErrDuplicateKey, "slug taken"), http.StatusConflict},
		{Storage(errors.New("timeout"), "delete image"), http.StatusBadGateway},
		{errors.Wrap(ErrUpstream, "mongo down"), http.StatusBadGateway},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
	}
}

func TestFromMongoNoDocuments(t *testing.T) {
	err := FromMongo(mongo.ErrNoDocuments, "job")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestFromMongoDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}

	err := FromMongo(dup, "job slug")

	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Equal(t, http.StatusConflict, StatusCode(err))
}

func TestFromMongoNil(t *testing.T) {
	assert.NoError(t, FromMongo(nil, "job"))
	assert.NoError(t, Storage(nil, "upload"))
}

func TestFromMongoOther(t *testing.T) {
	err := FromMongo(errors.New("connection reset"), "find items")

	assert.True(t, errors.Is(err, ErrUpstream))
}
