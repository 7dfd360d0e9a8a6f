package services

import (
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
)

// --- Data Transfer Objects (DTOs) ---

// EcosystemMetricsRequest carries the full set of landing page counters.
// Every update replaces the whole row.
type EcosystemMetricsRequest struct {
	RegisteredMembers          int64 `json:"registered_members"`
	StartupsSupported          int64 `json:"startups_supported"`
	MentorsOnBoard             int64 `json:"mentors_on_board"`
	IndustrialPartnerships     int64 `json:"industrial_partnerships"`
	AcademicPartnerships       int64 `json:"academic_partnerships"`
	IndustryConsultingProjects int64 `json:"industry_consulting_projects"`
	MsmeSupport                int64 `json:"msme_support"`
	OutreachInitiativesEvents  int64 `json:"outreach_initiatives_events"`
	NumberOfStartups           int64 `json:"number_of_startups"`
	StartupsGraduated          int64 `json:"startups_graduated"`
	EmploymentGenerated        int64 `json:"employment_generated"`
	CorpsFund                  int64 `json:"corps_fund"`
	CsrSecured                 int64 `json:"csr_secured"`
}

// Validate rejects negative counters.
func (req *EcosystemMetricsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RegisteredMembers, validation.Min(int64(0))),
		validation.Field(&req.StartupsSupported, validation.Min(int64(0))),
		validation.Field(&req.MentorsOnBoard, validation.Min(int64(0))),
		validation.Field(&req.IndustrialPartnerships, validation.Min(int64(0))),
		validation.Field(&req.AcademicPartnerships, validation.Min(int64(0))),
		validation.Field(&req.IndustryConsultingProjects, validation.Min(int64(0))),
		validation.Field(&req.MsmeSupport, validation.Min(int64(0))),
		validation.Field(&req.OutreachInitiativesEvents, validation.Min(int64(0))),
		validation.Field(&req.NumberOfStartups, validation.Min(int64(0))),
		validation.Field(&req.StartupsGraduated, validation.Min(int64(0))),
		validation.Field(&req.EmploymentGenerated, validation.Min(int64(0))),
		validation.Field(&req.CorpsFund, validation.Min(int64(0))),
		validation.Field(&req.CsrSecured, validation.Min(int64(0))),
	)
}

// --- EcosystemService Interface ---
type EcosystemService interface {
	GetMetrics() (*models.EcosystemMetrics, error)
	UpdateMetrics(req EcosystemMetricsRequest) (*models.EcosystemMetrics, error)
}

// --- ecosystemService Implementation ---
type ecosystemService struct {
	ecosystemRepo repositories.EcosystemRepository
}

// NewEcosystemService creates a new instance of EcosystemService.
func NewEcosystemService(ecosystemRepo repositories.EcosystemRepository) EcosystemService {
	return &ecosystemService{ecosystemRepo: ecosystemRepo}
}

// GetMetrics returns the stored counters, or all zeros before the first
// update, so the landing page never sees a missing row.
func (s *ecosystemService) GetMetrics() (*models.EcosystemMetrics, error) {
	metrics, err := s.ecosystemRepo.GetMetrics()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.EcosystemMetrics{}, nil
		}
		return nil, fmt.Errorf("failed to get ecosystem metrics: %w", err)
	}
	return metrics, nil
}

func (s *ecosystemService) UpdateMetrics(req EcosystemMetricsRequest) (*models.EcosystemMetrics, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	metrics := models.EcosystemMetrics{
		RegisteredMembers:          req.RegisteredMembers,
		StartupsSupported:          req.StartupsSupported,
		MentorsOnBoard:             req.MentorsOnBoard,
		IndustrialPartnerships:     req.IndustrialPartnerships,
		AcademicPartnerships:       req.AcademicPartnerships,
		IndustryConsultingProjects: req.IndustryConsultingProjects,
		MsmeSupport:                req.MsmeSupport,
		OutreachInitiativesEvents:  req.OutreachInitiativesEvents,
		NumberOfStartups:           req.NumberOfStartups,
		StartupsGraduated:          req.StartupsGraduated,
		EmploymentGenerated:        req.EmploymentGenerated,
		CorpsFund:                  req.CorpsFund,
		CsrSecured:                 req.CsrSecured,
	}
	if err := s.ecosystemRepo.UpsertMetrics(&metrics); err != nil {
		return nil, fmt.Errorf("failed to update ecosystem metrics: %w", err)
	}
	return &metrics, nil
}
