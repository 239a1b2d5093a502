package queries

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/guard"
)

// SearchResultLimit caps the number of search hits.
const SearchResultLimit = 20

var ErrSearchMenuItemsQueryIsNotConstructed = errors.New(
	"SearchMenuItemsQuery must be created via NewSearchMenuItemsQuery constructor",
)

var searchStripper = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchMenuItemsQuery is a case-insensitive substring search over name,
// description and ingredients.
type SearchMenuItemsQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchMenuItemsQuery strips angle brackets and quotes and trims the input.
// An empty term is allowed and matches nothing.
func NewSearchMenuItemsQuery(raw string) SearchMenuItemsQuery {
	return SearchMenuItemsQuery{
		term:  strings.TrimSpace(searchStripper.Replace(raw)),
		guard: guard.NewConstructorGuard(),
	}
}

func (q SearchMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrSearchMenuItemsQueryIsNotConstructed)
}

// Term is the sanitized search input.
func (q SearchMenuItemsQuery) Term() string {
	return q.term
}

func (q SearchMenuItemsQuery) pattern() string {
	return "%" + likeEscaper.Replace(q.term) + "%"
}
