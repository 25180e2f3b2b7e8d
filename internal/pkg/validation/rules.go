package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
)

// Field bounds shared by the client-side form schema and the server-side
// checks. The server re-validates everything: client validation is not a
// trust boundary.
const (
	CourseNameMinLength = 3
	CourseNameMaxLength = 100

	DescriptionMinLength = 10
	DescriptionMaxLength = 500

	PasswordMaxLength = 20
)

// ValidateCourseName checks the course name length bounds.
func ValidateCourseName(name string) error {
	if l := len(name); l < CourseNameMinLength || l > CourseNameMaxLength {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, CourseNameMinLength, CourseNameMaxLength)
	}
	return nil
}

// ValidateDescription checks the course description length bounds.
func ValidateDescription(description string) error {
	if l := len(description); l < DescriptionMinLength || l > DescriptionMaxLength {
		return fmt.Errorf("%w: description must be between %d and %d characters",
			apperrors.ErrValidationFailed, DescriptionMinLength, DescriptionMaxLength)
	}
	return nil
}

// ValidateImageURL checks that the image is a well-formed absolute http(s) URL.
func ValidateImageURL(image string) error {
	u, err := url.Parse(image)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: image must be a valid URL", apperrors.ErrValidationFailed)
	}
	return nil
}

// ValidateCourseLevel checks membership in the level enumeration.
func ValidateCourseLevel(level models.CourseLevel) error {
	if !level.IsValid() {
		return fmt.Errorf("%w: level must be one of %s, %s or %s",
			apperrors.ErrValidationFailed,
			models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced)
	}
	return nil
}

// ValidatePassword checks the login password: required, capped at
// PasswordMaxLength like the client form schema.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(password) > PasswordMaxLength {
		return fmt.Errorf("%w: password must be at most %d characters",
			apperrors.ErrValidationFailed, PasswordMaxLength)
	}
	return nil
}

// ValidateEmail performs a light structural check, the binding layer already
// applied the validator email rule.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", apperrors.ErrValidationFailed)
	}
	return nil
}
