package auth

import (
	"fmt"

	"okaziyo-api-io/api/pkg/models"
)

// Decision is the result of a role check: allowed or not, and if not,
// why the gate refused.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize checks an authenticated identity against the roles a route
// permits. It is a pure check; route wiring goes through the
// RequireRoles middleware, which calls this before the handler runs.
func Authorize(identity *JWTClaim, permitted ...models.UserRole) Decision {
	if identity == nil {
		return Decision{Reason: "no authenticated identity"}
	}

	for _, role := range permitted {
		if identity.Role == role {
			return Decision{Allowed: true}
		}
	}

	return Decision{
		Reason: fmt.Sprintf("role %q is not permitted here", identity.Role),
	}
}
