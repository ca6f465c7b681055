package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string            `json:"code"`             // 錯誤代碼
	Message string            `json:"message"`          // 錯誤信息
	Fields  map[string]string `json:"fields,omitempty"` // 欄位驗證錯誤
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 支援 errors.Is / errors.As
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓 Wrap 出來的錯誤仍能匹配預定義錯誤
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// StatusOf 取得錯誤對應的 HTTP 狀態碼，未知錯誤為 500
func StatusOf(err error) (int, *CustomError) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Status, ce
	}
	return http.StatusInternalServerError, ErrInternalError
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
	Fields  map[string]string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string, fields map[string]string) error {
	return &ValidationError{
		message: message,
		Fields:  fields,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeConflict        = "CONFLICT"          // 409
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError = "INTERNAL_ERROR" // 500
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound       = NewError(ErrCodeNotFound, "not found", http.StatusNotFound, nil)

	// 服務器錯誤
	ErrInternalError = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)

	// 業務錯誤
	ErrRecipeNotFound      = NewError(ErrCodeNotFound, "recipe not found", http.StatusNotFound, nil)
	ErrGoalNotFound        = NewError(ErrCodeNotFound, "health goal not found", http.StatusNotFound, nil)
	ErrPlanNotFound        = NewError(ErrCodeNotFound, "meal plan not found", http.StatusNotFound, nil)
	ErrGroceryItemNotFound = NewError(ErrCodeNotFound, "grocery item not found", http.StatusNotFound, nil)
	ErrRecipeExists        = NewError(ErrCodeConflict, "recipe already exists", http.StatusConflict, nil)
	ErrCacheMiss           = NewError("CACHE_MISS", "cache miss", http.StatusNotFound, nil)
	ErrCacheFull           = NewError("CACHE_FULL", "cache is full", http.StatusServiceUnavailable, nil)
)
