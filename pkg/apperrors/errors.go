package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrUserSuspended      = New(CodeUserSuspended, "User account suspended", http.StatusForbidden)
	ErrUserBanned         = New(CodeUserBanned, "User account banned", http.StatusForbidden)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrCannotModifySelf   = New(CodeCannotModifySelf, "Cannot modify your own account", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)

	// Провайдеры
	ErrProviderNotFound  = New(CodeProviderNotFound, "Provider not found", http.StatusNotFound)
	ErrProviderNotActive = New(CodeProviderNotActive, "Provider is not active", http.StatusBadRequest)
	ErrInvalidTransition = New(CodeInvalidTransition, "Status transition not allowed", http.StatusBadRequest)

	// Каталог
	ErrCatalogEntryNotFound = New(CodeCatalogEntryNotFound, "Catalog entry not found", http.StatusNotFound)
	ErrDuplicateLabel       = New(CodeDuplicateLabel, "An entry with this label already exists", http.StatusConflict)

	// Планы
	ErrPlanNotFound = New(CodePlanNotFound, "Plan not found", http.StatusNotFound)
	ErrPlanInactive = New(CodePlanInactive, "Plan is not active", http.StatusBadRequest)

	// Заявки и жалобы
	ErrEnquiryNotFound = New(CodeEnquiryNotFound, "Enquiry not found", http.StatusNotFound)
	ErrReportNotFound  = New(CodeReportNotFound, "Report not found", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Загрузка файлов
	ErrFileTooLarge    = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeInvalidFileType, "Invalid file type", http.StatusBadRequest)
	ErrPortfolioLimit  = New(CodePortfolioLimit, "Portfolio upload limit reached for current plan", http.StatusForbidden)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// Функции-помощники для создания стандартных ошибок
func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
