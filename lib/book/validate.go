package book

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"strings"
	"time"
)

type nowKey struct{}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := ParseGenre(fl.Field().String())
		return ok
	})

	_ = v.RegisterValidationCtx("notfuture", func(ctx context.Context, fl validator.FieldLevel) bool {
		now, ok := ctx.Value(nowKey{}).(time.Time)
		if !ok {
			now = time.Now()
		}
		return fl.Field().Int() <= int64(now.Year())
	})

	return v
}

// Violation describes one failed constraint of a Draft.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors is returned by New when the input is invalid.
type ValidationErrors []Violation

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	return "invalid book: " + strings.Join(v.Messages(), "; ")
}

// Messages returns the human-readable message of each violation.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return msgs
}

func validateDraft(d Draft, now time.Time) error {
	ctx := context.WithValue(context.Background(), nowKey{}, now)
	err := validate.StructCtx(ctx, d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe, now),
		})
	}
	return violations
}

// violationMessage turns a validator.FieldError into a message for the user
func violationMessage(fe validator.FieldError, now time.Time) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " must not be empty"
	case "gte":
		return fmt.Sprintf("%s must be %s or later, got %v", field, fe.Param(), fe.Value())
	case "notfuture":
		return fmt.Sprintf("%s must not be after %d, got %v", field, now.Year(), fe.Value())
	case "genre":
		return fmt.Sprintf("%s %q is not one of %s", field, fe.Value(), genreList())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func genreList() string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
