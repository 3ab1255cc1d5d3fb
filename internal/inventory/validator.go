package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/grocer/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validation errors.
var (
	ErrNameRequired        = errors.New("item name is required")
	ErrPriceNotPositive    = errors.New("item price must be greater than zero")
	ErrQuantityNotPositive = errors.New("item quantity must be greater than zero")
	ErrCategoryRequired    = errors.New("item category is required")
)

// fieldOrder is the order in which item fields are checked.
var fieldOrder = []struct {
	err     error
	field   string
	message string
}{
	{field: "Name", err: ErrNameRequired, message: "Item name is required."},
	{field: "Price", err: ErrPriceNotPositive, message: "Item price must be greater than zero."},
	{field: "Quantity", err: ErrQuantityNotPositive, message: "Item quantity must be greater than zero."},
	{field: "Category", err: ErrCategoryRequired, message: "Item category is required."},
}

// ValidationError reports the first item field that failed validation.
// Message is the sentence shown to the user.
type ValidationError struct {
	Err     error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator checks candidate items before they enter the inventory.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the item rules registered.
// It panics if a rule cannot be registered.
func NewValidator() *Validator {
	v := validator.New()

	rules := map[string]validator.Func{
		"notblank": validateNotBlank,
		"positive": validatePositive,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
		}
	}

	return &Validator{validate: v}
}

// Validate returns nil for a valid item or a *ValidationError naming the first
// failed check in the order name, price, quantity, category.
func (v *Validator) Validate(item model.InventoryItem) error {
	err := v.validate.Struct(item)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate item: %w", err)
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, e := range validationErrors {
		failed[e.StructField()] = true
	}

	for _, check := range fieldOrder {
		if failed[check.field] {
			return &ValidationError{Field: check.field, Err: check.err, Message: check.message}
		}
	}

	return fmt.Errorf("failed to validate item: %w", err)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validatePositive requires a decimal strictly greater than zero.
func validatePositive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}
