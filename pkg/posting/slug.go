package posting

import (
	"fmt"

	slug2 "github.com/gosimple/slug"
)

// Slug derives the URL identifier for a posting from its title and,
// when present, the hiring brand. The result is lowercase, hyphen
// separated and restricted to [a-z0-9-]. Uniqueness is not handled
// here; the slug index on the collection rejects collisions at insert.
func Slug(title, brand string) string {
	if brand != "" {
		return slug2.Make(fmt.Sprintf("%s at %s", title, brand))
	}

	return slug2.Make(title)
}
