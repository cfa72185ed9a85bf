package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/julianstephens/habitual/internal/errors"
)

// AccountInput is the data accepted when creating an account
type AccountInput struct {
	Username string `validate:"required,max=64,nospace"`
	// bcrypt ignores everything past 72 bytes
	Password string `validate:"required,max=72"`
	Email    string `validate:"omitempty,email,max=254"`
}

// HabitInput is the data accepted when creating a habit
type HabitInput struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
	Periodicity string `validate:"required,oneof=daily weekly"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	return v
}

// ValidateAccount checks a new account. Failures match errors.ErrInvalidInput.
func ValidateAccount(in AccountInput) error {
	return check(in)
}

// ValidateHabit checks a new habit. An unknown periodicity is reported as
// *errors.InvalidPeriodicityError; other failures match errors.ErrInvalidInput.
func ValidateHabit(in HabitInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			if fe.Field() == "Periodicity" {
				return &apperrors.InvalidPeriodicityError{Value: in.Periodicity}
			}
		}
	}
	return toInputError(err)
}

func check(in any) error {
	if err := validate.Struct(in); err != nil {
		return toInputError(err)
	}
	return nil
}

func toInputError(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.InvalidInput("%v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperrors.InvalidInput("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", field)
	case "nospace":
		return fmt.Sprintf("%s must not contain whitespace", field)
	default:
		return fmt.Sprintf("field '%s' failed on the '%s' tag", field, fe.Tag())
	}
}
