// Package validator implements the booking intake gate. A draft is checked as
// a whole: every failing field is reported in one pass so the form can show
// all problems at once instead of one per round trip.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"sudagala/pkg/logger"
	"sudagala/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		log:      log,
	}
}

// Validate checks a draft against the intake rules. Date ordering is not
// enforced here; the pricing engine clamps inverted ranges to one night.
func (v *BookingValidator) Validate(draft *model.BookingDraft) error {
	var validationErrors ValidationErrors

	if err := v.validate.Struct(draft); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			validationErrors = translateValidationErrors(validationErrs)
		} else {
			return err
		}
	}

	// Parse failures pile onto the struct-tag failures so the caller sees
	// everything wrong with the draft at once.
	if draft.CheckIn != "" {
		if _, err := draft.CheckInDate(); err != nil {
			validationErrors = append(validationErrors, ValidationError{
				Field:   "CheckIn",
				Message: fmt.Sprintf("CheckIn must be a date in %s format", model.DateLayout),
			})
		}
	}
	if draft.CheckOut != "" {
		if _, err := draft.CheckOutDate(); err != nil {
			validationErrors = append(validationErrors, ValidationError{
				Field:   "CheckOut",
				Message: fmt.Sprintf("CheckOut must be a date in %s format", model.DateLayout),
			})
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func (v *BookingValidator) ValidateStatusUpdate(update *model.BookingStatusUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			if err.Kind() == reflect.String {
				message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
			}
		case "max":
			if err.Kind() == reflect.String {
				message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
			}
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
