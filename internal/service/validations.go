package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/pkg/grades"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const (
	attemptsRule    = "min=1,max=99"
	descriptionRule = "max=500"
)

var fieldSentinels = map[string]error{
	"Grade":    errorvalues.ErrInvalidGrade,
	"Attempts": errorvalues.ErrInvalidAttempts,
	"Date":     errorvalues.ErrInvalidDate,
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Only labels of the V-scale
		validate.RegisterValidation("vgrade", func(fl validator.FieldLevel) bool {
			return grades.IsValid(fl.Field().String())
		})
	})
}

// validateRequest reports every failed field joined with ErrValidation and,
// where one exists, the field's own sentinel.
func validateRequest(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation unexpected error: %w", err)
	}
	errs := []error{errorvalues.ErrValidation}
	for _, fieldErr := range validationErrors {
		if sentinel, ok := fieldSentinels[fieldErr.Field()]; ok {
			errs = append(errs, sentinel)
		}
		errs = append(errs, fieldErr)
	}
	return errors.Join(errs...)
}

func validateGrade(name string) error {
	if !grades.IsValid(name) {
		return errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidGrade)
	}
	return nil
}

func validateAttempts(attempts int) error {
	InitValidator()
	if err := validate.Var(attempts, attemptsRule); err != nil {
		return errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidAttempts)
	}
	return nil
}

func validateDescription(description string) error {
	InitValidator()
	if err := validate.Var(description, descriptionRule); err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	return nil
}
