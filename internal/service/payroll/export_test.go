package payroll

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	domain "github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
)

func TestBuildWorkbook(t *testing.T) {
	name := "Maria Souza"
	records := []domain.Record{
		{
			ProviderID:   "11111111-1111-1111-1111-111111111111",
			ProviderName: &name,
			PeriodMonth:  1,
			PeriodYear:   2026,
			MonthlyValue: decimal.NewFromInt(3000),
			Breakdown: domain.Breakdown{
				OvertimeAmount: decimal.NewFromFloat(204.55),
				NetValue:       decimal.NewFromFloat(2065.29),
			},
			Status: domain.StatusDraft,
		},
		{
			ProviderID:   "22222222-2222-2222-2222-222222222222",
			PeriodMonth:  1,
			PeriodYear:   2026,
			MonthlyValue: decimal.NewFromInt(4500),
			Breakdown: domain.Breakdown{
				NetValue: decimal.NewFromInt(4500),
			},
			Status: domain.StatusPaid,
		},
	}

	data, err := buildWorkbook(records, 1, 2026)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payroll")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	assert.Equal(t, "Provider", rows[0][0])
	assert.Equal(t, "Net Value", rows[0][10])
	assert.Equal(t, "Status", rows[0][11])

	assert.Equal(t, "Maria Souza", rows[1][0])
	assert.Equal(t, "01/2026", rows[1][1])
	assert.Equal(t, "draft", rows[1][11])

	// Providers without a joined name fall back to the ID.
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", rows[2][0])
	assert.Equal(t, "paid", rows[2][11])
}

func TestBuildWorkbook_Empty(t *testing.T) {
	data, err := buildWorkbook(nil, 6, 2026)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payroll")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
