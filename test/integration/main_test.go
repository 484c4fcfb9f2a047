package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"gorm.io/gorm"
)

// Глобальные переменные для общего состояния
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// Без DATABASE_URL интеграционные тесты пропускаются.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL не задан, интеграционные тесты пропущены")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "my_super_secret_key_for_tests_12345")
		}

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

// TestMain теперь только для глобальной инициализации
func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}

// CreateTestService создает запись каталога услуг в транзакции
func CreateTestService(t *testing.T, tx *gorm.DB, id, label string, status models.CatalogStatus) models.Service {
	service := models.Service{
		ID:     id,
		Label:  label,
		Status: status,
	}
	if err := tx.Create(&service).Error; err != nil {
		t.Fatalf("Failed to create test service: %v", err)
	}
	return service
}

// CreateTestEventType создает тип события в транзакции
func CreateTestEventType(t *testing.T, tx *gorm.DB, id, label string, status models.CatalogStatus) models.EventType {
	eventType := models.EventType{
		ID:     id,
		Label:  label,
		Status: status,
	}
	if err := tx.Create(&eventType).Error; err != nil {
		t.Fatalf("Failed to create test event type: %v", err)
	}
	return eventType
}

// CreateTestPlan создает тариф в транзакции
func CreateTestPlan(t *testing.T, tx *gorm.DB, name string, price float64, status models.PlanStatus) models.Plan {
	plan := models.Plan{
		Name:          name,
		Price:         price,
		Currency:      "USD",
		BillingCycle:  models.BillingCycleMonthly,
		Status:        status,
		LeadsPerMonth: 20,
		Priority:      models.PlanPriorityNormal,
	}
	if err := tx.Create(&plan).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}
	return plan
}

// CreateTestEnquiry создает заявку клиента в транзакции
func CreateTestEnquiry(t *testing.T, tx *gorm.DB, providerID string, userID *string, status models.EnquiryStatus) models.Enquiry {
	eventDate := time.Now().AddDate(0, 2, 0)
	enquiry := models.Enquiry{
		ProviderID:  providerID,
		UserID:      userID,
		ClientName:  "Jane Client",
		ClientEmail: "jane@test.com",
		EventType:   "wedding",
		EventDate:   &eventDate,
		Message:     "Looking for a photographer for our wedding",
		Status:      status,
	}
	if err := tx.Create(&enquiry).Error; err != nil {
		t.Fatalf("Failed to create test enquiry: %v", err)
	}
	return enquiry
}

// CreateTestReport создает жалобу в транзакции
func CreateTestReport(t *testing.T, tx *gorm.DB, reporterID, providerID string, status models.ReportStatus) models.Report {
	report := models.Report{
		ReporterID: reporterID,
		ProviderID: providerID,
		ReportType: "fake_profile",
		Message:    "Profile photos look stolen",
		Status:     status,
	}
	if err := tx.Create(&report).Error; err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}
	return report
}

// CreateTestPackage создает пакет услуг провайдера в транзакции
func CreateTestPackage(t *testing.T, tx *gorm.DB, providerID, name string, price float64, active bool) models.ProviderPackage {
	pkg := models.ProviderPackage{
		ProviderID: providerID,
		Name:       name,
		Price:      price,
		Currency:   "USD",
		IsActive:   active,
	}
	pkg.SetEventTypes([]string{"wedding"})
	if err := tx.Create(&pkg).Error; err != nil {
		t.Fatalf("Failed to create test package: %v", err)
	}
	return pkg
}

// CreateTestPortfolioVideo создает видео-элемент портфолио в транзакции
func CreateTestPortfolioVideo(t *testing.T, tx *gorm.DB, providerID, youtubeURL string) models.PortfolioItem {
	item := models.PortfolioItem{
		ProviderID: providerID,
		Type:       models.PortfolioTypeVideo,
		YoutubeURL: youtubeURL,
	}
	if err := tx.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create test portfolio item: %v", err)
	}
	return item
}
