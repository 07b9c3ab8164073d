package util

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"okaziyo-api-io/api/pkg/apperr"
)

func TestMediaKey(t *testing.T) {
	key := MediaKey("My Brand Logo.PNG")

	assert.True(t, strings.HasSuffix(key, "-my-brand-logo"))
	assert.NotContains(t, key, " ")
	// Random prefix keeps two uploads of the same file apart.
	assert.NotEqual(t, key, MediaKey("My Brand Logo.PNG"))
}

func TestKeyFromLocation(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1/okaziyo/abc-logo.jpg": "abc-logo",
		"https://bucket.s3.amazonaws.com/jobs/uuid-brand-image.png":            "uuid-brand-image",
		"plain-key.jpg": "plain-key",
	}

	for location, want := range cases {
		assert.Equal(t, want, KeyFromLocation(location))
	}
}

func TestCheckImage(t *testing.T) {
	header := func(size int64, contentType string) *multipart.FileHeader {
		return &multipart.FileHeader{
			Size:   size,
			Header: textproto.MIMEHeader{"Content-Type": {contentType}},
		}
	}

	assert.NoError(t, CheckImage(header(1024, "image/png")))
	assert.NoError(t, CheckImage(header(MaxImageSize, "image/jpeg")))

	err := CheckImage(header(MaxImageSize+1, "image/png"))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = CheckImage(header(1024, "application/pdf"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
