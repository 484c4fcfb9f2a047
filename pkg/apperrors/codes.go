package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Общие
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	CodeConflict      ErrorCode = "CONFLICT"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Пользователи
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserSuspended      ErrorCode = "USER_SUSPENDED"
	CodeUserBanned         ErrorCode = "USER_BANNED"
	CodeInvalidUserRole    ErrorCode = "INVALID_USER_ROLE"
	CodeCannotModifySelf   ErrorCode = "CANNOT_MODIFY_SELF"

	// Провайдеры
	CodeProviderNotFound  ErrorCode = "PROVIDER_NOT_FOUND"
	CodeProviderNotActive ErrorCode = "PROVIDER_NOT_ACTIVE"
	CodeInvalidTransition ErrorCode = "INVALID_STATUS_TRANSITION"

	// Каталог (услуги / типы событий)
	CodeCatalogEntryNotFound ErrorCode = "CATALOG_ENTRY_NOT_FOUND"
	CodeDuplicateLabel       ErrorCode = "DUPLICATE_LABEL"

	// Планы
	CodePlanNotFound ErrorCode = "PLAN_NOT_FOUND"
	CodePlanInactive ErrorCode = "PLAN_INACTIVE"

	// Заявки и жалобы
	CodeEnquiryNotFound ErrorCode = "ENQUIRY_NOT_FOUND"
	CodeReportNotFound  ErrorCode = "REPORT_NOT_FOUND"

	// Загрузка файлов
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
	CodePortfolioLimit  ErrorCode = "PORTFOLIO_LIMIT_REACHED"
)
