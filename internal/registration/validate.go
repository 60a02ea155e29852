package registration

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ai-academy/academyhub/internal/models"
	"github.com/go-playground/validator/v10"
)

var nicknamePattern = regexp.MustCompile(`^[a-z0-9_-]{2,30}$`)

// Input is the registration payload. Enum memberships are enforced through
// the oneof tags; keep those in sync with the models package.
type Input struct {
	GitHubUsername string        `json:"github_username" validate:"omitempty,max=39"`
	Name           string        `json:"name" validate:"required,max=100"`
	Nickname       string        `json:"nickname" validate:"required,nickname"`
	Email          string        `json:"email" validate:"required,email"`
	Role           models.Role   `json:"role" validate:"required,oneof=FDE AI-SE AI-PM AI-DA AI-DS AI-SEC AI-FE"`
	Team           models.Team   `json:"team" validate:"required,oneof=Alpha Beta Gamma Delta Epsilon Zeta Eta Theta"`
	Stream         models.Stream `json:"stream" validate:"required,oneof=Tech Business"`
	AvatarURL      string        `json:"avatar_url" validate:"omitempty,url"`
	AuthUserID     string        `json:"auth_user_id"`
}

// ValidationError carries per-field messages the client can correct.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
		return nicknamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateInput checks the structural rules of a registration payload and
// returns a *ValidationError describing every failing field.
func ValidateInput(input *Input) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating input: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe)] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "GitHubUsername":
		return "github_username"
	case "AvatarURL":
		return "avatar_url"
	case "AuthUserID":
		return "auth_user_id"
	default:
		return strings.ToLower(fe.Field())
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "nickname":
		return "must be 2-30 characters of lowercase letters, digits, _ or -"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
