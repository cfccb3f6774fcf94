package parser

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// WarnTitlePrefix marks candidates that passed the structural check but failed
// the stricter schema. They are still persisted (warn, don't reject).
const WarnTitlePrefix = "⚠ "

// Categories a role may carry. ErrorCategory is included so fallback
// candidates survive re-validation unchanged.
var RoleCategories = []string{
	DefaultCategory,
	"Creative",
	"Productivity",
	"Education",
	"Entertainment",
	"Business",
	ErrorCategory,
}

// roleSchema mirrors RoleCandidate with the stricter bounds applied after the
// structural check has already passed.
type roleSchema struct {
	Title            string   `validate:"required,max=120"`
	Description      string   `validate:"required,max=500"`
	SystemPromptText string   `validate:"required,max=4000"`
	Category         string   `validate:"required,oneof=Custom Creative Productivity Education Entertainment Business Error"`
	Tags             []string `validate:"omitempty,max=10,dive,max=40"`
}

var roleValidator = validator.New()

// ValidateStrict re-validates a candidate against the bounded schema. It is
// independent of the structural check in SplitRoleResponse so both steps can
// be tested in isolation.
func ValidateStrict(c RoleCandidate) error {
	return roleValidator.Struct(roleSchema{
		Title:            c.Title,
		Description:      c.Description,
		SystemPromptText: c.SystemPromptText,
		Category:         c.Category,
		Tags:             c.Tags,
	})
}

// MarkWarned prefixes the candidate title with the warning marker so a
// schema failure stays observable downstream. Already-marked titles are left
// alone.
func MarkWarned(c RoleCandidate) RoleCandidate {
	if strings.HasPrefix(c.Title, WarnTitlePrefix) {
		return c
	}
	c.Title = WarnTitlePrefix + c.Title
	return c
}
