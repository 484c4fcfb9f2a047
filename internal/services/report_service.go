package services

import (
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReportService interface {
	Create(db *gorm.DB, reporterID string, req *dto.CreateReportRequest) (*dto.ReportResponse, error)

	// Разбор жалоб - админская зона
	List(db *gorm.DB, criteria repositories.ReportSearchCriteria) (*dto.ReportListResponse, error)
	Get(db *gorm.DB, id string) (*dto.ReportResponse, error)
	Update(db *gorm.DB, id string, req *dto.UpdateReportRequest) (*dto.ReportResponse, error)
	Delete(db *gorm.DB, id string) error
}

type ReportServiceImpl struct {
	reportRepo   repositories.ReportRepository
	providerRepo repositories.ProviderRepository
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	providerRepo repositories.ProviderRepository,
) ReportService {
	return &ReportServiceImpl{
		reportRepo:   reportRepo,
		providerRepo: providerRepo,
	}
}

func (s *ReportServiceImpl) Create(db *gorm.DB, reporterID string, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if _, err := s.providerRepo.FindByID(db, req.ProviderID); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	report := &models.Report{
		ReporterID: reporterID,
		ProviderID: req.ProviderID,
		ReportType: req.ReportType,
		Message:    req.Message,
		Status:     models.ReportStatusPending,
	}
	if len(req.Attachments) > 0 {
		report.SetAttachments(req.Attachments)
	}

	if err := s.reportRepo.Create(db, report); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReportResponse(report), nil
}

func (s *ReportServiceImpl) List(db *gorm.DB, criteria repositories.ReportSearchCriteria) (*dto.ReportListResponse, error) {
	reports, total, err := s.reportRepo.List(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, dto.NewReportResponse(&reports[i]))
	}
	return &dto.ReportListResponse{Reports: out, Total: total}, nil
}

func (s *ReportServiceImpl) Get(db *gorm.DB, id string) (*dto.ReportResponse, error) {
	report, err := s.findReport(db, id)
	if err != nil {
		return nil, err
	}
	return dto.NewReportResponse(report), nil
}

func (s *ReportServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	report, err := s.findReport(db, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		target := models.ReportStatus(*req.Status)
		if !report.Status.CanTransitionTo(target) {
			return nil, apperrors.ErrInvalidTransition.WithDetails(map[string]string{
				"from": string(report.Status),
				"to":   string(target),
			})
		}
		report.Status = target
	}
	if req.AdminNotes != nil {
		report.AdminNotes = *req.AdminNotes
	}

	if err := s.reportRepo.Update(db, report); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReportResponse(report), nil
}

func (s *ReportServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.reportRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrReportNotFound) {
			return apperrors.ErrReportNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReportServiceImpl) findReport(db *gorm.DB, id string) (*models.Report, error) {
	report, err := s.reportRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReportNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}
