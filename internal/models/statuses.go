package models

type UserRole string
type UserStatus string
type ProviderStatus string
type CatalogStatus string
type PlanStatus string
type BillingCycle string
type PlanPriority string
type EnquiryStatus string
type ReportStatus string
type PortfolioType string

const (
	UserRoleUser     UserRole = "user"
	UserRoleProvider UserRole = "provider"
	UserRoleAdmin    UserRole = "admin"

	UserStatusActive    UserStatus = "Active"
	UserStatusBanned    UserStatus = "Banned"
	UserStatusSuspended UserStatus = "Suspended"

	ProviderStatusActive      ProviderStatus = "Active"
	ProviderStatusPending     ProviderStatus = "Pending"
	ProviderStatusSuspended   ProviderStatus = "Suspended"
	ProviderStatusDeactivated ProviderStatus = "Deactivated"

	CatalogStatusActive   CatalogStatus = "Active"
	CatalogStatusInactive CatalogStatus = "Inactive"

	PlanStatusActive   PlanStatus = "Active"
	PlanStatusInactive PlanStatus = "Inactive"

	BillingCycleMonthly   BillingCycle = "Monthly"
	BillingCycleQuarterly BillingCycle = "Quarterly"
	BillingCycleYearly    BillingCycle = "Yearly"

	PlanPriorityNormal PlanPriority = "Normal"
	PlanPriorityHigh   PlanPriority = "High"
	PlanPriorityTop    PlanPriority = "Top"

	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusResponded EnquiryStatus = "responded"
	EnquiryStatusBooked    EnquiryStatus = "booked"
	EnquiryStatusClosed    EnquiryStatus = "closed"

	ReportStatusPending  ReportStatus = "pending"
	ReportStatusInReview ReportStatus = "in-review"
	ReportStatusResolved ReportStatus = "resolved"

	PortfolioTypePhoto PortfolioType = "photo"
	PortfolioTypeVideo PortfolioType = "video"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleProvider, UserRoleAdmin:
		return true
	}
	return false
}

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusBanned, UserStatusSuspended:
		return true
	}
	return false
}

func (s ProviderStatus) Valid() bool {
	switch s {
	case ProviderStatusActive, ProviderStatusPending, ProviderStatusSuspended, ProviderStatusDeactivated:
		return true
	}
	return false
}

func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusResponded, EnquiryStatusBooked, EnquiryStatusClosed:
		return true
	}
	return false
}

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInReview, ReportStatusResolved:
		return true
	}
	return false
}

func (c BillingCycle) Valid() bool {
	switch c {
	case BillingCycleMonthly, BillingCycleQuarterly, BillingCycleYearly:
		return true
	}
	return false
}

func (p PlanPriority) Valid() bool {
	switch p {
	case PlanPriorityNormal, PlanPriorityHigh, PlanPriorityTop:
		return true
	}
	return false
}

func (t PortfolioType) Valid() bool {
	return t == PortfolioTypePhoto || t == PortfolioTypeVideo
}

// providerTransitions - таблица разрешенных переходов статуса провайдера.
// Деактивация разрешена из любого статуса, повторная запись того же
// статуса идемпотентна.
var providerTransitions = map[ProviderStatus][]ProviderStatus{
	ProviderStatusPending:     {ProviderStatusActive, ProviderStatusDeactivated},
	ProviderStatusActive:      {ProviderStatusSuspended, ProviderStatusDeactivated},
	ProviderStatusSuspended:   {ProviderStatusActive, ProviderStatusDeactivated},
	ProviderStatusDeactivated: {ProviderStatusActive, ProviderStatusDeactivated},
}

// CanTransitionTo проверяет переход по таблице providerTransitions
func (s ProviderStatus) CanTransitionTo(target ProviderStatus) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	if s == target {
		return true
	}
	for _, allowed := range providerTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanTransitionTo для заявок: любой валидный статус достижим из любого.
// Свободные переходы - осознанное решение (триаж в интерфейсе провайдера
// должен позволять и "откатить" статус), но теперь оно явное и проверяемое.
func (s EnquiryStatus) CanTransitionTo(target EnquiryStatus) bool {
	return s.Valid() && target.Valid()
}

// CanTransitionTo для жалоб: pending <-> in-review <-> resolved без ограничений
func (s ReportStatus) CanTransitionTo(target ReportStatus) bool {
	return s.Valid() && target.Valid()
}

// IsVerifiedFor вычисляет значение is_verified для статуса провайдера.
// Инвариант: is_verified == true тогда и только тогда, когда статус Active.
func (s ProviderStatus) IsVerifiedFor() bool {
	return s == ProviderStatusActive
}
