// Package errors 提供应用层错误类型与 HTTP 状态映射
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType 错误类型
type ErrorType string

const (
	ErrorTypeInvalidRequest ErrorType = "invalid_request"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeInternal       ErrorType = "internal_error"
)

// ErrorCode 错误码
type ErrorCode string

const (
	// 校验错误
	CodeInvalidRequest  ErrorCode = "invalid_request"
	CodeContentRequired ErrorCode = "content_required"
	CodeContentTooLong  ErrorCode = "content_too_long"
	CodeInvalidSeverity ErrorCode = "invalid_severity"
	CodeInvalidAction   ErrorCode = "invalid_action"
	CodeInvalidStatus   ErrorCode = "invalid_status"
	CodeWordRequired    ErrorCode = "word_required"
	CodePasswordTooWeak ErrorCode = "password_too_weak"

	// 认证错误
	CodeTokenRequired      ErrorCode = "token_required"
	CodeInvalidToken       ErrorCode = "invalid_token"
	CodeTokenExpired       ErrorCode = "token_expired"
	CodeInvalidCredentials ErrorCode = "invalid_credentials"

	// 冲突 / 不存在
	CodeDuplicateWord ErrorCode = "duplicate_word"
	CodeNotFound      ErrorCode = "not_found"

	// 限流
	CodeRateLimitExceeded ErrorCode = "rate_limit_exceeded"

	// 内部错误
	CodeInternalError ErrorCode = "internal_error"
	CodeDatabaseError ErrorCode = "database_error"
)

// AppError 应用错误
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       ErrorCode              `json:"code"`
	Details    map[string]interface{} `json:"details,omitempty"`
	HTTPStatus int                    `json:"-"`
	Err        error                  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails 添加详情
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithError 包装原始错误
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// ErrorResponse API 错误响应格式
type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
}

// ErrorResponseBody 错误响应体
type ErrorResponseBody struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    ErrorCode              `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToResponse 转换为 API 响应格式
// 内部错误不向调用方泄露细节，统一替换为笼统文案
func (e *AppError) ToResponse() ErrorResponse {
	message := e.Message
	if e.Type == ErrorTypeInternal {
		message = "Internal server error"
	}
	return ErrorResponse{
		Error: ErrorResponseBody{
			Type:    e.Type,
			Message: message,
			Code:    e.Code,
			Details: e.Details,
		},
	}
}

// NewInvalidRequest 创建无效请求错误
func NewInvalidRequest(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidRequest,
		Message:    message,
		Code:       code,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewAuthenticationError 创建认证错误
func NewAuthenticationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeAuthentication,
		Message:    message,
		Code:       code,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewNotFoundError 创建资源不存在错误
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		Code:       CodeNotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError 创建冲突错误（如重复过滤词），调用方可据此决定不再重试
func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		Code:       code,
		HTTPStatus: http.StatusConflict,
	}
}

// NewRateLimitExceeded 创建限流错误
func NewRateLimitExceeded(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeRateLimit,
		Message:    message,
		Code:       CodeRateLimitExceeded,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// NewInternalError 创建内部错误
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		Code:       CodeInternalError,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewDatabaseError 创建数据库错误
func NewDatabaseError(err error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    "Database error",
		Code:       CodeDatabaseError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Is 检查错误类型
func Is(err error, target ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == target
	}
	return false
}

// IsCode 检查错误码
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError 类型转换：将 error 转换为 AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}
