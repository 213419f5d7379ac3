package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Milestone/internal/api/dto"
	"Milestone/internal/model"
)

func datePtr(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func floatPtr(v float64) *float64 { return &v }

func TestContributionsClosedAndContract(t *testing.T) {
	contact := &model.Contact{
		ContactType:  model.ContactTypeBuyer,
		ContractDate: datePtr("2025-03-01"),
		ClosedDate:   datePtr("2025-03-10"),
		PaidIncome:   floatPtr(450000),
	}

	adjustments := Contributions(contact)
	require.Len(t, adjustments, 2)

	assert.Equal(t, *datePtr("2025-03-10"), adjustments[0].Date)
	assert.Equal(t, 1, adjustments[0].Delta.ClosedDeals)
	assert.Equal(t, 450000.0, adjustments[0].Delta.VolumeClosed)

	assert.Equal(t, *datePtr("2025-03-01"), adjustments[1].Date)
	assert.Equal(t, 1, adjustments[1].Delta.BuyersSigned)
	assert.Equal(t, 0, adjustments[1].Delta.ListingsTaken)
}

func TestContributionsSellerContract(t *testing.T) {
	contact := &model.Contact{
		ContactType:  model.ContactTypeSeller,
		ContractDate: datePtr("2025-04-02"),
	}

	adjustments := Contributions(contact)
	require.Len(t, adjustments, 1)
	assert.Equal(t, 1, adjustments[0].Delta.ListingsTaken)
	assert.Equal(t, 0, adjustments[0].Delta.BuyersSigned)
	assert.Equal(t, 0, adjustments[0].Delta.ClosedDeals)
}

func TestContributionsClosedWithoutIncome(t *testing.T) {
	contact := &model.Contact{
		ContactType: model.ContactTypeBuyer,
		ClosedDate:  datePtr("2025-05-20"),
	}

	adjustments := Contributions(contact)
	require.Len(t, adjustments, 1)
	assert.Equal(t, 1, adjustments[0].Delta.ClosedDeals)
	assert.Equal(t, 0.0, adjustments[0].Delta.VolumeClosed)
}

func TestContributionsNoneForProspect(t *testing.T) {
	contact := &model.Contact{ContactType: model.ContactTypeBuyer}
	assert.Empty(t, Contributions(contact))
}

func TestBuildContactDefaults(t *testing.T) {
	contact, err := buildContact(7, &dto.ContactUpsertDTO{
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), contact.UserID)
	assert.Equal(t, model.ContactTypeBuyer, contact.ContactType)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
}

func TestBuildContactRejectsBadEnums(t *testing.T) {
	_, err := buildContact(1, &dto.ContactUpsertDTO{
		FirstName: "Jane", LastName: "Doe", ContactType: "tenant",
	})
	assert.ErrorIs(t, err, ErrContactTypeInvalid)

	_, err = buildContact(1, &dto.ContactUpsertDTO{
		FirstName: "Jane", LastName: "Doe", Status: "ghost",
	})
	assert.ErrorIs(t, err, ErrStatusInvalid)

	_, err = buildContact(1, &dto.ContactUpsertDTO{
		FirstName: "Jane", LastName: "Doe", ClosedDate: strPtr("03/10/2025"),
	})
	assert.ErrorIs(t, err, ErrDateInvalid)
}

func strPtr(s string) *string { return &s }

func TestRowToContactDTO(t *testing.T) {
	columns := normalizeHeader([]string{"First Name", "Last Name", "Email", "Type", "Budget Min", "Closed Date", "Paid Income"})
	in, err := rowToContactDTO(columns, []string{"John", "Smith", "john@example.com", "seller", "250,000", "2025-02-14", "12,500.50"})
	require.NoError(t, err)

	assert.Equal(t, "John", in.FirstName)
	assert.Equal(t, "Smith", in.LastName)
	require.NotNil(t, in.Email)
	assert.Equal(t, "john@example.com", *in.Email)
	assert.Equal(t, "seller", in.ContactType)
	require.NotNil(t, in.BudgetMin)
	assert.Equal(t, 250000.0, *in.BudgetMin)
	require.NotNil(t, in.PaidIncome)
	assert.Equal(t, 12500.50, *in.PaidIncome)
	require.NotNil(t, in.ClosedDate)
	assert.Equal(t, "2025-02-14", *in.ClosedDate)
}

func TestRowToContactDTOContactTypeAlias(t *testing.T) {
	columns := normalizeHeader([]string{"first_name", "last_name", "contact_type"})
	in, err := rowToContactDTO(columns, []string{"Amy", "Lee", "buyer"})
	require.NoError(t, err)
	assert.Equal(t, "buyer", in.ContactType)
}

func TestRowToContactDTORejectsMissingName(t *testing.T) {
	columns := normalizeHeader([]string{"first_name", "last_name"})
	_, err := rowToContactDTO(columns, []string{"", "Smith"})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestParseOptionalFloat(t *testing.T) {
	v, err := parseOptionalFloat("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseOptionalFloat("1,250,000.50")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1250000.50, *v)

	_, err = parseOptionalFloat("abc")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestImportCSVPartialFailure(t *testing.T) {
	csvBody := strings.Join([]string{
		"first_name,last_name,type,status",
		"John,Smith,buyer,new",
		",NoFirst,buyer,new",
		"Amy,Lee,seller,qualified",
	}, "\n")

	repo := &stubContactRepo{}
	svc := &contactServiceImpl{contactRepo: repo, metricRepo: &stubMetricRepo{}}

	result, err := svc.ImportCSV(t.Context(), 3, strings.NewReader(csvBody))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "第 3 行")
	require.Len(t, repo.created, 2)
	assert.Equal(t, "John", repo.created[0].FirstName)
	assert.Equal(t, "Amy", repo.created[1].FirstName)
}
