package services

import (
	"errors"
	"testing"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselImageRequestValidate(t *testing.T) {
	assert.NoError(t, (&CarouselImageRequest{Title: "Welcome"}).Validate())
	assert.ErrorContains(t, (&CarouselImageRequest{}).Validate(), "blank")
}

func TestReorderCarouselImagesRejectsBadInput(t *testing.T) {
	svc := NewCarouselService(nil, nil, nil)

	err := svc.ReorderCarouselImages(nil)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.ReorderCarouselImages([]int64{3, 1, 3})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "duplicate")
}

func TestTeamMemberRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     TeamMemberRequest
		wantErr string
	}{
		{
			name: "valid core member",
			req: TeamMemberRequest{
				Name:  "Asha Rao",
				Role:  "Program Manager",
				Team:  models.TeamGroupCore,
				Email: strPtr("asha@example.com"),
			},
		},
		{
			name:    "missing role",
			req:     TeamMemberRequest{Name: "Asha Rao", Team: models.TeamGroupExecutive},
			wantErr: "blank",
		},
		{
			name:    "unknown group",
			req:     TeamMemberRequest{Name: "Asha Rao", Role: "Advisor", Team: "Board"},
			wantErr: "valid value",
		},
		{
			name: "malformed email",
			req: TeamMemberRequest{
				Name:  "Asha Rao",
				Role:  "Advisor",
				Team:  models.TeamGroupCore,
				Email: strPtr("not-an-email"),
			},
			wantErr: "email",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestReorderTeamMembersRejectsDuplicates(t *testing.T) {
	svc := NewTeamService(nil, nil, nil)
	err := svc.ReorderTeamMembers([]int64{1, 2, 1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRoadmapItemRequestValidate(t *testing.T) {
	valid := RoadmapItemRequest{Year: "2024", Month: "March", Event: "First cohort graduated"}
	assert.NoError(t, valid.Validate())

	badYear := RoadmapItemRequest{Year: "24", Month: "March", Event: "x"}
	assert.ErrorContains(t, badYear.Validate(), "valid format")

	missingEvent := RoadmapItemRequest{Year: "2024", Month: "March"}
	assert.ErrorContains(t, missingEvent.Validate(), "blank")
}

func TestIsValidRoadmapMonth(t *testing.T) {
	for _, month := range models.RoadmapMonths {
		assert.True(t, models.IsValidRoadmapMonth(month), month)
	}
	assert.False(t, models.IsValidRoadmapMonth("Mar"))
	assert.False(t, models.IsValidRoadmapMonth("march"))
}

func TestIsValidTeamGroup(t *testing.T) {
	assert.True(t, models.IsValidTeamGroup(models.TeamGroupCore))
	assert.True(t, models.IsValidTeamGroup(models.TeamGroupExecutive))
	assert.False(t, models.IsValidTeamGroup("Interns"))
}

func TestEcosystemMetricsRequestValidate(t *testing.T) {
	assert.NoError(t, (&EcosystemMetricsRequest{RegisteredMembers: 120}).Validate())
	assert.ErrorContains(t, (&EcosystemMetricsRequest{MentorsOnBoard: -1}).Validate(), "no less than")
}

func TestContactRequestValidate(t *testing.T) {
	valid := ContactRequest{
		Name:      "Incubation Center",
		Email:     strPtr("hello@example.com"),
		Instagram: strPtr("https://instagram.com/center"),
	}
	assert.NoError(t, valid.Validate())

	assert.ErrorContains(t, (&ContactRequest{}).Validate(), "blank")
	assert.ErrorContains(t, (&ContactRequest{Name: "X", Email: strPtr("nope")}).Validate(), "email")
	assert.ErrorContains(t, (&ContactRequest{Name: "X", MapLink: strPtr("not a url")}).Validate(), "URL")
}

// stubEventRecordRepo lets the service tests exercise error mapping without a
// database.
type stubEventRecordRepo struct {
	repositories.EventRecordRepository
	created   *models.EventRecord
	createErr error
}

func (s *stubEventRecordRepo) CreateEventRecord(record *models.EventRecord) error {
	if s.createErr != nil {
		return s.createErr
	}
	record.ID = 1
	s.created = record
	return nil
}

func TestEventRecordRequestValidate(t *testing.T) {
	valid := EventRecordRequest{
		Name:      "Ravi Kumar",
		Email:     "ravi@example.com",
		Phone:     "9876543210",
		EventName: "Demo Day 2026",
	}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "nope"
	assert.ErrorContains(t, badEmail.Validate(), "email")

	negative := valid
	negative.AmountPaid = -50
	assert.ErrorContains(t, negative.Validate(), "no less than")
}

func TestCreateEventRecordParsesDate(t *testing.T) {
	repo := &stubEventRecordRepo{}
	svc := NewEventRecordService(repo)

	record, err := svc.CreateEventRecord(EventRecordRequest{
		Name:               "Ravi Kumar",
		Email:              "ravi@example.com",
		Phone:              "9876543210",
		EventName:          "Demo Day 2026",
		AmountPaid:         499,
		DateOfRegistration: "2026-08-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, record.DateOfRegistration.Year())
	assert.Equal(t, "Demo Day 2026", repo.created.EventName)

	_, err = svc.CreateEventRecord(EventRecordRequest{
		Name:               "Ravi Kumar",
		Email:              "ravi@example.com",
		Phone:              "9876543210",
		EventName:          "Demo Day 2026",
		DateOfRegistration: "15/08/2026",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEventRecordMapsDuplicate(t *testing.T) {
	repo := &stubEventRecordRepo{createErr: repositories.ErrDuplicateKey}
	svc := NewEventRecordService(repo)

	_, err := svc.CreateEventRecord(EventRecordRequest{
		Name:      "Ravi Kumar",
		Email:     "ravi@example.com",
		Phone:     "9876543210",
		EventName: "Demo Day 2026",
	})
	assert.True(t, errors.Is(err, ErrDuplicateRegistration))
}
