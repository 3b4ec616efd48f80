package payroll

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/validator"
)

var exportColumns = []struct {
	header string
	width  float64
	value  func(r payroll.Record) interface{}
}{
	{"Provider", 28, func(r payroll.Record) interface{} {
		if r.ProviderName != nil {
			return *r.ProviderName
		}
		return r.ProviderID
	}},
	{"Period", 10, func(r payroll.Record) interface{} {
		return fmt.Sprintf("%02d/%d", r.PeriodMonth, r.PeriodYear)
	}},
	{"Monthly Value", 14, func(r payroll.Record) interface{} { return r.MonthlyValue.InexactFloat64() }},
	{"Overtime", 12, func(r payroll.Record) interface{} { return r.Breakdown.OvertimeAmount.InexactFloat64() }},
	{"Holiday", 12, func(r payroll.Record) interface{} { return r.Breakdown.HolidayAmount.InexactFloat64() }},
	{"Night", 12, func(r payroll.Record) interface{} { return r.Breakdown.NightAmount.InexactFloat64() }},
	{"DSR", 12, func(r payroll.Record) interface{} { return r.Breakdown.DSRAmount.InexactFloat64() }},
	{"Additions", 12, func(r payroll.Record) interface{} { return r.Breakdown.TotalAdditions.InexactFloat64() }},
	{"Discounts", 12, func(r payroll.Record) interface{} { return r.Breakdown.TotalDiscounts.InexactFloat64() }},
	{"Advance", 12, func(r payroll.Record) interface{} { return r.Breakdown.AdvanceAmount.InexactFloat64() }},
	{"Net Value", 14, func(r payroll.Record) interface{} { return r.Breakdown.NetValue.InexactFloat64() }},
	{"Status", 10, func(r payroll.Record) interface{} { return string(r.Status) }},
}

// ExportRecords renders every record of the reference month as an XLSX
// workbook, generated fully in memory.
func (s *PayrollServiceImpl) ExportRecords(ctx context.Context, month, year int) (string, []byte, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return "", nil, fmt.Errorf("%w: invalid reference period %d/%d", payroll.ErrInvalidPeriod, month, year)
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return "", nil, err
	}

	filter := payroll.Filter{
		PeriodMonth: &month,
		PeriodYear:  &year,
		Page:        1,
		Limit:       1000,
	}
	records, _, err := s.payrollRepo.ListRecords(ctx, companyID, filter)
	if err != nil {
		return "", nil, err
	}

	data, err := buildWorkbook(records, month, year)
	if err != nil {
		return "", nil, err
	}

	fileName := fmt.Sprintf("payroll_%04d_%02d.xlsx", year, month)
	return fileName, data, nil
}

func buildWorkbook(records []payroll.Record, month, year int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll"
	f.SetSheetName(f.GetSheetName(0), sheet)

	_ = f.SetDocProps(&excelize.DocProperties{
		Title: fmt.Sprintf("Payroll %02d/%d", month, year),
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col.header)

		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, name, name, col.width)
	}

	rowIdx := 2
	for _, record := range records {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			_ = f.SetCellValue(sheet, cell, col.value(record))
		}
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workbook: %w", err)
	}
	return buf.Bytes(), nil
}
