package validator

import (
	"log"

	"evently_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка конфигурации - приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-user-status", validateUserStatus)
	mustRegister("is-provider-status", validateProviderStatus)
	mustRegister("is-enquiry-status", validateEnquiryStatus)
	mustRegister("is-report-status", validateReportStatus)
	mustRegister("is-billing-cycle", validateBillingCycle)
	mustRegister("is-plan-priority", validatePlanPriority)
	mustRegister("is-portfolio-type", validatePortfolioType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func validateUserStatus(fl validator.FieldLevel) bool {
	return models.UserStatus(fl.Field().String()).Valid()
}

func validateProviderStatus(fl validator.FieldLevel) bool {
	return models.ProviderStatus(fl.Field().String()).Valid()
}

func validateEnquiryStatus(fl validator.FieldLevel) bool {
	return models.EnquiryStatus(fl.Field().String()).Valid()
}

func validateReportStatus(fl validator.FieldLevel) bool {
	return models.ReportStatus(fl.Field().String()).Valid()
}

func validateBillingCycle(fl validator.FieldLevel) bool {
	return models.BillingCycle(fl.Field().String()).Valid()
}

func validatePlanPriority(fl validator.FieldLevel) bool {
	return models.PlanPriority(fl.Field().String()).Valid()
}

func validatePortfolioType(fl validator.FieldLevel) bool {
	return models.PortfolioType(fl.Field().String()).Valid()
}
