package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UUID      uuid.UUID
	Username  string
	Email     string
	Firstname *string
	Lastname  *string

	// Completed is the legacy per-language record of finished exercise
	// slugs. It is written by MarkCompleted only; submitting a new attempt
	// never touches it, even for an exercise listed here.
	Completed map[string][]string

	// WorkingOn maps language to the slug of the user's current exercise.
	WorkingOn map[string]string

	CreatedAt time.Time
}

// HasCompletedLegacy reports whether the legacy completed record lists the
// (language, slug) pair.
func (u User) HasCompletedLegacy(language, slug string) bool {
	for _, s := range u.Completed[language] {
		if s == slug {
			return true
		}
	}
	return false
}

type CreateUserParams struct {
	Username  string
	Email     string
	Firstname *string
	Lastname  *string
	Password  string
}
