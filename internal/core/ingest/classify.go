package ingest

// Header signatures of the two sheets the pipeline needs. One declarative
// table, consumed by ClassifySheets; per-sheet bespoke detection is exactly
// what made the source workbooks painful to maintain.
var (
	// detail sheet: per-client rows with monthly columns
	firmaDetalle = []string{"Nombre Cliente", "Enero", "Total", "Abono", "Diferencia"}

	// aggregate sheet: per-period rows; the period column is labelled either
	// "Mes" or "Nombre" depending on the workbook revision
	firmasUnicos = [][]string{
		{"Mes", "Venta", "Abono", "Diferencia"},
		{"Nombre", "Venta", "Abono", "Diferencia"},
	}
)

// Sheet is one workbook tab materialized as a row matrix. Missing cells are
// empty strings.
type Sheet struct {
	Name string
	Rows [][]string
}

// SheetMatch is a classified sheet together with its located header row.
type SheetMatch struct {
	Sheet
	HeaderRow int
}

// ClassifySheets scans the workbook's sheets in order and assigns at most one
// to the detail slot and at most one to the aggregate slot. First match wins
// per slot, and a sheet claimed by the detail signature is not re-tested
// against the aggregate signatures. A nil slot means no sheet qualified.
func ClassifySheets(sheets []Sheet) (detalle, unicos *SheetMatch) {
	for i := range sheets {
		sh := sheets[i]
		if len(sh.Rows) == 0 {
			continue
		}

		if idx := FindHeaderRow(sh.Rows, firmaDetalle, DefaultHeaderScan); idx != HeaderNotFound {
			if detalle == nil {
				detalle = &SheetMatch{Sheet: sh, HeaderRow: idx}
			}
			continue
		}

		if unicos == nil {
			for _, firma := range firmasUnicos {
				if idx := FindHeaderRow(sh.Rows, firma, DefaultHeaderScan); idx != HeaderNotFound {
					unicos = &SheetMatch{Sheet: sh, HeaderRow: idx}
					break
				}
			}
		}
	}
	return detalle, unicos
}
