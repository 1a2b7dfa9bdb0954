package ingest

import (
	"strings"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

// columnIndex resolves a canonical label against the normalized header row,
// returning -1 when the column is absent.
func columnIndex(header []string, label string) int {
	want := NormalizeHeader(label)
	for i, cell := range header {
		if NormalizeHeader(cell) == want {
			return i
		}
	}
	return -1
}

// ParseDetalle extracts one ClienteDetalle per data row below the located
// header. Rows whose name cell is empty after trimming are separators or
// spacing artifacts and are skipped, not errors. A month column missing from
// the header defaults that month to 0 on every record; partial month coverage
// is expected mid-year. Source row order is preserved.
func ParseDetalle(rows [][]string, headerRow int) []domain.ClienteDetalle {
	if headerRow < 0 || headerRow >= len(rows) {
		return nil
	}
	header := rows[headerRow]

	idxNombre := columnIndex(header, "Nombre Cliente")
	idxTotal := columnIndex(header, "Total")
	idxAbono := columnIndex(header, "Abono")
	idxDif := columnIndex(header, "Diferencia")

	idxMeses := make(map[string]int, len(domain.Meses))
	for _, mes := range domain.Meses {
		idxMeses[mes] = columnIndex(header, mes)
	}

	var out []domain.ClienteDetalle
	for _, row := range rows[headerRow+1:] {
		nombre := strings.TrimSpace(cellAt(row, idxNombre))
		if nombre == "" {
			continue
		}

		meses := make(map[string]float64, len(domain.Meses))
		for _, mes := range domain.Meses {
			if idx := idxMeses[mes]; idx >= 0 {
				meses[mes] = ParseCLP(cellAt(row, idx))
			} else {
				meses[mes] = 0
			}
		}

		out = append(out, domain.ClienteDetalle{
			Nombre:     nombre,
			Meses:      meses,
			Total:      ParseCLP(cellAt(row, idxTotal)),
			Abono:      ParseCLP(cellAt(row, idxAbono)),
			Diferencia: ParseCLP(cellAt(row, idxDif)),
		})
	}
	return out
}
