// Package csvfile implementa repository.DatasetSource sobre un archivo CSV.
//
// La cabecera se compara normalizada ("Product_type" == "Product type"), las columnas
// requeridas se validan antes de leer filas y cada celda numérica se convierte al tipo
// del campo; el primer valor inválido corta la carga con un *domain.ValueError.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/domain/repository"
)

var _ repository.DatasetSource = (*DatasetLoader)(nil)

// Options parámetros de lectura del CSV.
type Options struct {
	Path      string
	Encoding  string // utf-8 (default) | latin1 | iso-8859-1 | windows-1252
	Delimiter rune   // 0 = ','
}

// DatasetLoader lee el dataset desde un CSV en disco.
type DatasetLoader struct {
	opts Options
}

// NewDatasetLoader construye el loader.
func NewDatasetLoader(opts Options) *DatasetLoader {
	return &DatasetLoader{opts: opts}
}

// Load abre el archivo y lo parsea. Un archivo inexistente se reporta como domain.ErrNotFound.
func (l *DatasetLoader) Load(ctx context.Context) (*entity.Dataset, error) {
	f, err := os.Open(l.opts.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("csv: %s: %w", l.opts.Path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("csv: abrir %s: %w", l.opts.Path, err)
	}
	defer f.Close()

	ds, err := Parse(ctx, f, l.opts.Encoding, l.opts.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", l.opts.Path, err)
	}
	ds.Source = l.opts.Path
	return ds, nil
}

// Parse lee un dataset desde r. Exportado para poder cargar datos que no vienen de disco
// (tests, uploads).
func Parse(ctx context.Context, r io.Reader, enc string, delimiter rune) (*entity.Dataset, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}

	binders, err := bindHeader(header)
	if err != nil {
		return nil, err
	}

	ds := &entity.Dataset{Columns: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		line, _ := cr.FieldPos(0)

		var rec entity.SKURecord
		for _, b := range binders {
			raw := strings.TrimSpace(row[b.index])
			if err := b.set(&rec, raw); err != nil {
				return nil, &domain.ValueError{Line: line, Column: b.column, Value: raw, Err: err}
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return ds, nil
}

func decoderFor(enc string) (transform.Transformer, error) {
	var e encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		// Excel suele guardar los CSV con BOM; UTF8BOM lo descarta si está presente.
		e = unicode.UTF8BOM
	case "latin1", "iso-8859-1":
		e = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		e = charmap.Windows1252
	default:
		return nil, fmt.Errorf("codificación %q no soportada: %w", enc, domain.ErrInvalidInput)
	}
	return e.NewDecoder(), nil
}

// ── Binding de columnas ───────────────────────────────────────────────────────

type setter func(rec *entity.SKURecord, raw string) error

type binder struct {
	column string
	index  int
	set    setter
}

// fieldSetters asocia cada columna canónica con la asignación a su campo.
var fieldSetters = map[string]setter{
	entity.ColProductType:           str(func(r *entity.SKURecord, v string) { r.ProductType = v }),
	entity.ColSKU:                   str(func(r *entity.SKURecord, v string) { r.SKU = v }),
	entity.ColPrice:                 dec(func(r *entity.SKURecord, v decimal.Decimal) { r.Price = v }),
	entity.ColAvailability:          integer(func(r *entity.SKURecord, v int) { r.Availability = v }),
	entity.ColProductsSold:          integer(func(r *entity.SKURecord, v int) { r.ProductsSold = v }),
	entity.ColRevenueGenerated:      dec(func(r *entity.SKURecord, v decimal.Decimal) { r.RevenueGenerated = v }),
	entity.ColCustomerDemographics:  str(func(r *entity.SKURecord, v string) { r.CustomerDemographics = v }),
	entity.ColStockLevels:           integer(func(r *entity.SKURecord, v int) { r.StockLevels = v }),
	entity.ColLeadTimes:             integer(func(r *entity.SKURecord, v int) { r.LeadTimes = v }),
	entity.ColOrderQuantities:       integer(func(r *entity.SKURecord, v int) { r.OrderQuantities = v }),
	entity.ColShippingTimes:         integer(func(r *entity.SKURecord, v int) { r.ShippingTimes = v }),
	entity.ColShippingCarriers:      str(func(r *entity.SKURecord, v string) { r.ShippingCarrier = v }),
	entity.ColShippingCosts:         dec(func(r *entity.SKURecord, v decimal.Decimal) { r.ShippingCosts = v }),
	entity.ColSupplierName:          str(func(r *entity.SKURecord, v string) { r.SupplierName = v }),
	entity.ColLocation:              str(func(r *entity.SKURecord, v string) { r.Location = v }),
	entity.ColLeadTime:              integer(func(r *entity.SKURecord, v int) { r.LeadTime = v }),
	entity.ColProductionVolumes:     integer(func(r *entity.SKURecord, v int) { r.ProductionVolumes = v }),
	entity.ColManufacturingLeadTime: integer(func(r *entity.SKURecord, v int) { r.ManufacturingLeadTime = v }),
	entity.ColManufacturingCosts:    dec(func(r *entity.SKURecord, v decimal.Decimal) { r.ManufacturingCosts = v }),
	entity.ColInspectionResults:     str(func(r *entity.SKURecord, v string) { r.InspectionResults = v }),
	entity.ColDefectRates:           dec(func(r *entity.SKURecord, v decimal.Decimal) { r.DefectRates = v }),
	entity.ColTransportationModes:   str(func(r *entity.SKURecord, v string) { r.TransportationMode = v }),
	entity.ColRoutes:                str(func(r *entity.SKURecord, v string) { r.Route = v }),
	entity.ColCosts:                 dec(func(r *entity.SKURecord, v decimal.Decimal) { r.Costs = v }),
}

// bindHeader resuelve la posición de cada columna conocida. Las columnas extra se
// ignoran; las requeridas ausentes se reportan todas juntas.
func bindHeader(header []string) ([]binder, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := entity.NormalizeColumn(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	var missing []string
	binders := make([]binder, 0, len(fieldSetters))
	for _, col := range entity.RequiredColumns {
		i, ok := pos[entity.NormalizeColumn(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		binders = append(binders, binder{column: col, index: i, set: fieldSetters[col]})
	}
	if len(missing) > 0 {
		return nil, &domain.ColumnError{Columns: missing}
	}
	for _, col := range entity.OptionalColumns {
		if i, ok := pos[entity.NormalizeColumn(col)]; ok {
			binders = append(binders, binder{column: col, index: i, set: optional(fieldSetters[col])})
		}
	}
	return binders, nil
}

func str(assign func(*entity.SKURecord, string)) setter {
	return func(r *entity.SKURecord, raw string) error {
		assign(r, raw)
		return nil
	}
}

func dec(assign func(*entity.SKURecord, decimal.Decimal)) setter {
	return func(r *entity.SKURecord, raw string) error {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		assign(r, v)
		return nil
	}
}

func integer(assign func(*entity.SKURecord, int)) setter {
	return func(r *entity.SKURecord, raw string) error {
		v, err := parseInt(raw)
		if err != nil {
			return err
		}
		assign(r, v)
		return nil
	}
}

// optional deja el campo en cero cuando la celda viene vacía.
func optional(s setter) setter {
	return func(r *entity.SKURecord, raw string) error {
		if raw == "" {
			return nil
		}
		return s(r, raw)
	}
}

// parseInt acepta enteros escritos como flotantes sin parte decimal ("12.0"),
// que es como pandas exporta columnas enteras con algún NaN.
func parseInt(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%q no es un entero", raw)
	}
	return int(f), nil
}
