package validator

import (
	"testing"

	domainerrors "garage/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleCreateOilChange struct {
	ChangeDate string `json:"change_date" validate:"required,datetime=2006-01-02"`
	Mileage    *int64 `json:"mileage" validate:"required,gte=0"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

type sampleCreateFuelRecord struct {
	FillDate      string   `json:"fill_date" validate:"required,datetime=2006-01-02"`
	PricePerLiter *float64 `json:"price_per_liter" validate:"required,gt=0"`
	LitersFilled  *float64 `json:"liters_filled" validate:"required,gt=0"`
}

type sampleListQuery struct {
	Page  int `json:"page" validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func violationsOf(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)

	return validationErr.Violations
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleCreateOilChange{ChangeDate: "2026-03-01", Mileage: int64Ptr(42000)}))
	assert.NoError(t, v.Validate(&sampleCreateFuelRecord{FillDate: "2026-04-05", PricePerLiter: float64Ptr(0.01), LitersFilled: float64Ptr(1)}))
	assert.NoError(t, v.Validate(&sampleListQuery{}))
	assert.NoError(t, v.Validate(&sampleListQuery{Page: 1, Limit: 100}))
}

func TestValidate_ZeroMileageIsValid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleCreateOilChange{ChangeDate: "2026-03-01", Mileage: int64Ptr(0)})
	assert.NoError(t, err)
}

func TestValidate_NegativeMileage(t *testing.T) {
	v := New()

	err := v.Validate(&sampleCreateOilChange{ChangeDate: "2026-03-01", Mileage: int64Ptr(-1)})
	violations := violationsOf(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "mileage")
}

func TestValidate_ZeroPriceIsRejected(t *testing.T) {
	v := New()

	err := v.Validate(&sampleCreateFuelRecord{FillDate: "2026-04-05", PricePerLiter: float64Ptr(0), LitersFilled: float64Ptr(10)})
	violations := violationsOf(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "price_per_liter")
}

func TestValidate_BadDateFormat(t *testing.T) {
	v := New()

	err := v.Validate(&sampleCreateOilChange{ChangeDate: "01/03/2026", Mileage: int64Ptr(100)})
	violations := violationsOf(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "change_date")
	assert.Contains(t, violations[0], "YYYY-MM-DD")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	v := New()

	err := v.Validate(&sampleCreateFuelRecord{})
	violations := violationsOf(t, err)
	assert.Len(t, violations, 3)
}

func TestValidate_PaginationBounds(t *testing.T) {
	v := New()

	assert.Error(t, v.Validate(&sampleListQuery{Page: -1}))
	assert.Error(t, v.Validate(&sampleListQuery{Limit: 101}))
	assert.NoError(t, v.Validate(&sampleListQuery{Limit: 1}))
}

func TestValidate_ErrorIsValidationFailed(t *testing.T) {
	v := New()

	err := v.Validate(&sampleCreateOilChange{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
