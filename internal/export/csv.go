package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
)

// Columns lists the record field names in declaration order. It is the CSV
// header and the XLSX header row.
var Columns = []string{
	"id",
	"date",
	"farmName",
	"temperature",
	"humidity",
	"rainfall",
	"sunshineHours",
	"harvestQuantity",
	"cultivatedArea",
	"productQuality",
	"cropType",
	"productionCosts",
	"revenue",
	"profitMargin",
	"waterConsumption",
	"fuelConsumption",
	"laborHours",
	"productivityEfficiency",
	"sustainability",
	"season",
}

// Table is a decoded CSV document. Values are untyped strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// EncodeCSV renders a header row plus one row per record. Fields containing
// a comma, quote or newline are quoted and embedded quotes doubled, per
// RFC 4180.
func EncodeCSV(dataset domain.FarmDataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := range dataset {
		if err := w.Write(recordValues(&dataset[i])); err != nil {
			return nil, fmt.Errorf("write record %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func recordValues(r *domain.FarmRecord) []string {
	return []string{
		r.ID,
		r.Date.Format(time.RFC3339),
		r.FarmName,
		formatFloat(r.Temperature),
		formatFloat(r.Humidity),
		formatFloat(r.Rainfall),
		formatFloat(r.SunshineHours),
		formatFloat(r.HarvestQuantity),
		formatFloat(r.CultivatedArea),
		formatFloat(r.ProductQuality),
		r.CropType.String(),
		formatFloat(r.ProductionCosts),
		formatFloat(r.Revenue),
		formatFloat(r.ProfitMargin),
		formatFloat(r.WaterConsumption),
		formatFloat(r.FuelConsumption),
		formatFloat(r.LaborHours),
		formatFloat(r.ProductivityEfficiency),
		formatFloat(r.Sustainability),
		r.Season.String(),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DecodeCSV reads a header row and every data row.
func DecodeCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, errors.New("read csv: missing header row")
	}
	return Table{Header: rows[0], Rows: rows[1:]}, nil
}

// RecordsFromCSV re-types table rows into records. Columns are matched by
// header name, so column order may differ from Columns.
func RecordsFromCSV(t Table) (domain.FarmDataset, error) {
	idx := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		idx[h] = i
	}
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrInvalidArgument, c)
		}
	}

	dataset := make(domain.FarmDataset, 0, len(t.Rows))
	for n, row := range t.Rows {
		p := rowParser{row: row, idx: idx}
		rec := domain.FarmRecord{
			ID:       p.str("id"),
			FarmName: p.str("farmName"),

			Temperature:   p.float("temperature"),
			Humidity:      p.float("humidity"),
			Rainfall:      p.float("rainfall"),
			SunshineHours: p.float("sunshineHours"),

			HarvestQuantity: p.float("harvestQuantity"),
			CultivatedArea:  p.float("cultivatedArea"),
			ProductQuality:  p.float("productQuality"),

			ProductionCosts: p.float("productionCosts"),
			Revenue:         p.float("revenue"),
			ProfitMargin:    p.float("profitMargin"),

			WaterConsumption: p.float("waterConsumption"),
			FuelConsumption:  p.float("fuelConsumption"),
			LaborHours:       p.float("laborHours"),

			ProductivityEfficiency: p.float("productivityEfficiency"),
			Sustainability:         p.float("sustainability"),
		}
		rec.Date = p.date("date")
		rec.CropType = p.crop("cropType")
		rec.Season = p.season("season")

		if p.err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, p.err)
		}
		dataset = append(dataset, rec)
	}
	return dataset, nil
}

// rowParser keeps the first conversion error so a row reads as one block.
type rowParser struct {
	row []string
	idx map[string]int
	err error
}

func (p *rowParser) str(col string) string {
	i := p.idx[col]
	if i >= len(p.row) {
		if p.err == nil {
			p.err = fmt.Errorf("column %q missing", col)
		}
		return ""
	}
	return p.row[i]
}

func (p *rowParser) float(col string) float64 {
	s := p.str(col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %q: %w", col, err)
	}
	return v
}

func (p *rowParser) date(col string) time.Time {
	v, err := time.Parse(time.RFC3339, p.str(col))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %q: %w", col, err)
	}
	return v
}

func (p *rowParser) crop(col string) domain.CropType {
	v, err := domain.ParseCropType(p.str(col))
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}

func (p *rowParser) season(col string) domain.Season {
	v, err := domain.ParseSeason(p.str(col))
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}
