package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"okaziyo-api-io/api/internal/auth"
	"okaziyo-api-io/api/pkg/models"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, recorder
}

func TestIdentityMissing(t *testing.T) {
	c, _ := testContext(t)

	assert.Nil(t, Identity(c))
}

func TestRequireRolesAllows(t *testing.T) {
	c, recorder := testContext(t)
	c.Set(identityKey, &auth.JWTClaim{Id: "abc", Role: models.RoleAdmin})

	RequireRoles(models.RoleCreator, models.RoleAdmin)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRolesCreatorGates(t *testing.T) {
	// Scholarship creation admits creators; job creation does not.
	c, recorder := testContext(t)
	c.Set(identityKey, &auth.JWTClaim{Id: "abc", Role: models.RoleCreator})

	RequireRoles(models.RoleCreator, models.RoleAdmin)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, recorder.Code)

	c, recorder = testContext(t)
	c.Set(identityKey, &auth.JWTClaim{Id: "abc", Role: models.RoleCreator})

	RequireRoles(models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRolesRejects(t *testing.T) {
	c, recorder := testContext(t)
	c.Set(identityKey, &auth.JWTClaim{Id: "abc", Role: models.RoleUser})

	RequireRoles(models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRolesRejectsUnauthenticated(t *testing.T) {
	c, recorder := testContext(t)

	RequireRoles(models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
