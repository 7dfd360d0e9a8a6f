package services

import (
	"testing"

	"incubator_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPartnerRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     PartnerRequest
		wantErr string
	}{
		{
			name: "valid company partner",
			req: PartnerRequest{
				Name:        "Tech Corp",
				Type:        models.PartnerTypeCorporate,
				CompanyName: strPtr("Tech Corp Ltd"),
				Website:     strPtr("https://techcorp.example.com"),
			},
		},
		{
			name: "valid individual partner",
			req: PartnerRequest{
				Name:     "Jane Mentor",
				Type:     models.PartnerTypeMentors,
				Email:    strPtr("jane@example.com"),
				LinkedIn: strPtr("https://www.linkedin.com/in/jane-mentor"),
			},
		},
		{
			name:    "missing name",
			req:     PartnerRequest{Type: models.PartnerTypeAcademic},
			wantErr: "blank",
		},
		{
			name:    "unknown type",
			req:     PartnerRequest{Name: "X", Type: "Sponsors"},
			wantErr: "valid value",
		},
		{
			name: "company with malformed website",
			req: PartnerRequest{
				Name:    "Tech Corp",
				Type:    models.PartnerTypeCorporate,
				Website: strPtr("techcorp.example.com"),
			},
			wantErr: "website",
		},
		{
			name: "individual with malformed email",
			req: PartnerRequest{
				Name:  "Jane Mentor",
				Type:  models.PartnerTypeMentors,
				Email: strPtr("not-an-email"),
			},
			wantErr: "email",
		},
		{
			name: "malformed linkedin profile",
			req: PartnerRequest{
				Name:     "Jane Mentor",
				Type:     models.PartnerTypeExternalInvestors,
				LinkedIn: strPtr("https://example.com/jane"),
			},
			wantErr: "LinkedIn",
		},
		{
			name: "empty optional fields are fine",
			req: PartnerRequest{
				Name:    "IP Office",
				Type:    models.PartnerTypeIPPartners,
				Website: strPtr(""),
			},
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

func TestIsCompanyPartnerType(t *testing.T) {
	assert.True(t, models.IsCompanyPartnerType(models.PartnerTypeAcademic))
	assert.True(t, models.IsCompanyPartnerType(models.PartnerTypeCorporate))
	assert.True(t, models.IsCompanyPartnerType(models.PartnerTypeIPPartners))
	assert.False(t, models.IsCompanyPartnerType(models.PartnerTypeMentors))
	assert.False(t, models.IsCompanyPartnerType(models.PartnerTypeExternalInvestors))
}
