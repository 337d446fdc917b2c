package inventory

import "fmt"

// Code is the closed set of failure kinds the engine can produce. Every
// failure is one of these; callers match on the code, not the message.
type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
)

// StockShortage is the detail payload carried by INSUFFICIENT_STOCK.
type StockShortage struct {
	ProductID string `json:"productId"`
	Available int    `json:"available"`
	Required  int    `json:"required"`
}

type Error struct {
	Code    Code
	Message string
	Details any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func validationErr(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func notFound(what, id string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s not found: %s", what, id)}
}

func insufficientStock(productID string, available, required int) *Error {
	return &Error{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for product %s: available=%d required=%d", productID, available, required),
		Details: StockShortage{ProductID: productID, Available: available, Required: required},
	}
}
