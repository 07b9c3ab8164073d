package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"okaziyo-api-io/api/pkg/models"
)

func TestAuthorizeAllowsPermittedRole(t *testing.T) {
	identity := &JWTClaim{Id: "abc", Role: models.RoleAdmin}

	decision := Authorize(identity, models.RoleCreator, models.RoleAdmin)

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
}

func TestAuthorizeRejectsOtherRoles(t *testing.T) {
	identity := &JWTClaim{Id: "abc", Role: models.RoleUser}

	decision := Authorize(identity, models.RoleAdmin)

	assert.False(t, decision.Allowed)
	assert.NotEmpty(t, decision.Reason)
}

func TestAuthorizeRejectsMissingIdentity(t *testing.T) {
	decision := Authorize(nil, models.RoleAdmin)

	assert.False(t, decision.Allowed)
	assert.Equal(t, "no authenticated identity", decision.Reason)
}
