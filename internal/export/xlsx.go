package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
)

// SheetName is the worksheet holding exported records.
const SheetName = "Farm Data"

// EncodeXLSX renders the dataset as a workbook with a bold header row and
// one typed row per record.
func EncodeXLSX(dataset domain.FarmDataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header %s: %w", h, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i := range dataset {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := xlsxValues(&dataset[i])
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write record %d: %w", i, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "C", 24)
	_ = f.SetColWidth(SheetName, "D", "T", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func xlsxValues(r *domain.FarmRecord) []any {
	return []any{
		r.ID,
		r.Date.Format(time.RFC3339),
		r.FarmName,
		r.Temperature,
		r.Humidity,
		r.Rainfall,
		r.SunshineHours,
		r.HarvestQuantity,
		r.CultivatedArea,
		r.ProductQuality,
		r.CropType.String(),
		r.ProductionCosts,
		r.Revenue,
		r.ProfitMargin,
		r.WaterConsumption,
		r.FuelConsumption,
		r.LaborHours,
		r.ProductivityEfficiency,
		r.Sustainability,
		r.Season.String(),
	}
}

// DecodeXLSX reads the records sheet back into a Table of formatted cell
// strings.
func DecodeXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", SheetName, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("read sheet %q: missing header row", SheetName)
	}
	return Table{Header: rows[0], Rows: rows[1:]}, nil
}

// sniffXLSX reports whether data starts with the zip magic number.
func sniffXLSX(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}
