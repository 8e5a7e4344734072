package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"sudagala/pkg/logger"
	"sudagala/pkg/model"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

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

type StayValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewStayValidator(log *logger.Logger) *StayValidator {
	v := validator.New()

	if err := v.RegisterValidation("slug_format", validateSlugFormat); err != nil {
		log.Fatal("Failed to register 'slug_format' validator", "error", err)
	}

	return &StayValidator{
		validate: v,
		log:      log,
	}
}

func validateSlugFormat(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func (v *StayValidator) Validate(stay *model.Stay) error {
	if err := v.validate.Struct(stay); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	// Day Outings are priced from base_price_lkr alone; every other category
	// needs at least one usable rate.
	if stay.Category != model.CategoryDayOuting {
		if stay.BasePriceLKR <= 0 && stay.PriceFB <= 0 {
			return ValidationErrors{
				ValidationError{
					Field:   "BasePriceLKR",
					Message: "either base_price_lkr or price_fb must be set",
				},
			}
		}
	}

	return nil
}

func (v *StayValidator) ValidateUpdate(update *model.StayUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	if update.MinGuests != nil && update.MaxGuests != nil {
		if *update.MaxGuests < *update.MinGuests {
			return ValidationErrors{
				ValidationError{
					Field:   "MaxGuests",
					Message: fmt.Sprintf("max_guests (%d) must be >= min_guests (%d)", *update.MaxGuests, *update.MinGuests),
				},
			}
		}
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
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must not be negative", err.Field())
		case "gtefield":
			message = fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "slug_format":
			message = fmt.Sprintf("%s must be lowercase letters, digits and hyphens", err.Field())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
