package view

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSV exports mirror the on-screen tables: same fields, same order as the
// projection that produced them. Every field is quoted with internal quotes
// doubled, and the bytes are Windows-1252 encoded so the files open cleanly
// in the Excel installs the reports come from.

func escaparCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// sanitizarCelda strips embedded line breaks and control characters from a
// cell before quoting.
func sanitizarCelda(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '\r' || r == '\n' || r == '\t':
		case r < 32:
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func monto(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escribirCSV(filas [][]string) ([]byte, error) {
	var sb strings.Builder
	for _, fila := range filas {
		for i, celda := range fila {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escaparCSV(sanitizarCelda(celda)))
		}
		sb.WriteByte('\n')
	}

	var buffer bytes.Buffer
	encoder := charmap.Windows1252.NewEncoder()
	w := transform.NewWriter(&buffer, encoder)
	if _, err := w.Write([]byte(sb.String())); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// ExportarClientes renders a client collection, in its current order, as the
// table export: Cliente, Total, Abono, Diferencia.
func ExportarClientes(clientes []domain.ClienteDetalle) ([]byte, error) {
	filas := [][]string{{"Cliente", "Total", "Abono", "Diferencia"}}
	for _, c := range clientes {
		filas = append(filas, []string{c.Nombre, monto(c.Total), monto(c.Abono), monto(c.Diferencia)})
	}
	return escribirCSV(filas)
}

// ExportarTopDeuda renders a debt ranking with its position column.
func ExportarTopDeuda(clientes []domain.ClienteDetalle) ([]byte, error) {
	filas := [][]string{{"#", "Cliente", "Total", "Abono", "Deuda"}}
	for i, c := range clientes {
		filas = append(filas, []string{
			strconv.Itoa(i + 1), c.Nombre, monto(c.Total), monto(c.Abono), monto(c.Diferencia),
		})
	}
	return escribirCSV(filas)
}

// ExportarCliente renders one client's annual figures followed by the month
// breakdown.
func ExportarCliente(c domain.ClienteDetalle) ([]byte, error) {
	filas := [][]string{
		{"Cliente", c.Nombre},
		{"Total", monto(c.Total)},
		{"Abono", monto(c.Abono)},
		{"Diferencia", monto(c.Diferencia)},
		{},
		{"Mes", "Monto"},
	}
	for _, mes := range domain.Meses {
		filas = append(filas, []string{mes, monto(c.Meses[mes])})
	}
	return escribirCSV(filas)
}
