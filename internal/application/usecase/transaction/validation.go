// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions, in characters.
const MaxDescriptionLength = 255

// MaxAmountPlaces is the number of decimal places an amount may carry.
const MaxAmountPlaces = 2

// transactionRules is the field set a stored transaction must satisfy.
// Amount carries the magnitude; the sign is derived from Type afterwards.
type transactionRules struct {
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	AmountPlaces int32   `json:"amount_places" validate:"lte=2"`
	Category     string  `json:"category" validate:"required,known_category"`
	Type         string  `json:"type" validate:"required,transaction_type"`
	Description  string  `json:"description" validate:"max=255"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("known_category", validateKnownCategory)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	v.RegisterStructValidation(validateCategoryMatchesType, transactionRules{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func validateKnownCategory(fl validator.FieldLevel) bool {
	return entity.IsKnownCategory(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return entity.TransactionType(fl.Field().String()).IsValid()
}

// validateCategoryMatchesType rejects a known category paired with the other transaction type.
func validateCategoryMatchesType(sl validator.StructLevel) {
	rules := sl.Current().Interface().(transactionRules)
	txnType := entity.TransactionType(rules.Type)
	if !txnType.IsValid() || !entity.IsKnownCategory(rules.Category) {
		return
	}
	if !entity.CategoryAllows(rules.Category, txnType) {
		sl.ReportError(rules.Category, "category", "Category", "category_type", rules.Type)
	}
}

// validateTransaction checks t against the transaction rules and returns the most
// relevant failure as a TransactionError. magnitude is the amount as entered by the
// user, before the sign is derived from the type.
func validateTransaction(t *entity.Transaction, magnitude decimal.Decimal) error {
	rules := transactionRules{
		Amount:       magnitude.InexactFloat64(),
		AmountPlaces: decimalPlaces(magnitude),
		Category:     t.Category,
		Type:         string(t.Type),
		Description:  t.Description,
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate transaction: %w", err)
	}

	var best *domainerror.TransactionError
	bestRank := len(rulePriority)
	for _, fe := range fieldErrs {
		txnErr, rank := toTransactionError(fe)
		if rank < bestRank {
			best, bestRank = txnErr, rank
		}
	}
	return best
}

// rulePriority orders failures: missing fields are reported before malformed ones.
var rulePriority = []domainerror.TransactionErrorCode{
	domainerror.ErrCodeMissingTransactionFields,
	domainerror.ErrCodeInvalidTransactionAmount,
	domainerror.ErrCodeInvalidTransactionType,
	domainerror.ErrCodeUnknownCategory,
	domainerror.ErrCodeCategoryTypeMismatch,
	domainerror.ErrCodeDescriptionTooLong,
}

func toTransactionError(fe validator.FieldError) (*domainerror.TransactionError, int) {
	var txnErr *domainerror.TransactionError

	switch {
	case fe.Tag() == "required" && (fe.Field() == "amount" || fe.Field() == "category"):
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"amount and category are required",
			domainerror.ErrMissingTransactionFields,
		)
	case fe.Field() == "amount_places":
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount must have at most %d decimal places", MaxAmountPlaces),
			domainerror.ErrInvalidTransactionAmount,
		)
	case fe.Field() == "amount":
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	case fe.Field() == "type":
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	case fe.Tag() == "known_category":
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("unknown category %q", fe.Value()),
			domainerror.ErrUnknownCategory,
		)
	case fe.Tag() == "category_type":
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category %q does not accept %s transactions", fe.Value(), fe.Param()),
			domainerror.ErrCategoryTypeMismatch,
		)
	default:
		txnErr = domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	for rank, code := range rulePriority {
		if code == txnErr.Code {
			return txnErr, rank
		}
	}
	return txnErr, len(rulePriority)
}

// decimalPlaces counts the significant fractional digits of d, ignoring trailing zeros.
func decimalPlaces(d decimal.Decimal) int32 {
	places := int32(0)
	if exp := d.Exponent(); exp < 0 {
		places = -exp
	}
	for places > 0 && d.Equal(d.Truncate(places-1)) {
		places--
	}
	return places
}
