package ingest

import (
	"strings"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

// ParseUnicos extracts one PeriodoUnico per data row below the located
// header. The period label lives in a "Mes" column or, in older workbook
// revisions, a "Nombre" column; "Mes" takes precedence when both exist. An
// explicit Diferencia column is authoritative; without one the balance is
// Abono-Venta. Rows with an empty period label are skipped.
func ParseUnicos(rows [][]string, headerRow int) []domain.PeriodoUnico {
	if headerRow < 0 || headerRow >= len(rows) {
		return nil
	}
	header := rows[headerRow]

	idxMes := columnIndex(header, "Mes")
	if idxMes < 0 {
		idxMes = columnIndex(header, "Nombre")
	}
	idxVenta := columnIndex(header, "Venta")
	idxAbono := columnIndex(header, "Abono")
	idxDif := columnIndex(header, "Diferencia")

	var out []domain.PeriodoUnico
	for _, row := range rows[headerRow+1:] {
		mes := strings.TrimSpace(cellAt(row, idxMes))
		if mes == "" {
			continue
		}

		venta := ParseCLP(cellAt(row, idxVenta))
		abono := ParseCLP(cellAt(row, idxAbono))

		diferencia := abono - venta
		if idxDif >= 0 {
			diferencia = ParseCLP(cellAt(row, idxDif))
		}

		out = append(out, domain.PeriodoUnico{
			Mes:        mes,
			Venta:      venta,
			Abono:      abono,
			Diferencia: diferencia,
		})
	}
	return out
}
