// Package view projects the canonical client collection into what the tables
// and exports show: filtered, sorted, paginated slices. Projections always
// work on a copy and recompute from the canonical collection, so the loaded
// records are never mutated in place.
package view

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	noAlfanumericoRegex = regexp.MustCompile(`[^A-Z0-9 ]+`)
	espaciosRegex       = regexp.MustCompile(`\s+`)
)

// NormalizarNombre canonicalizes a client name for searching and lookups:
// accents stripped, uppercased, punctuation collapsed to spaces. Header
// matching stays exact; this looser form is only for free-text search and
// the lookup suggestion path.
func NormalizarNombre(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(t, s)
	result = strings.ToUpper(result)
	result = noAlfanumericoRegex.ReplaceAllString(result, " ")
	result = espaciosRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// ResultadoClientes is one page of the projected client table plus the
// pagination bookkeeping the UI shows ("Página X de Y · Mostrando N de M").
type ResultadoClientes struct {
	Clientes       []domain.ClienteDetalle `json:"clientes"`
	TotalClientes  int                     `json:"total_clientes"`
	TotalFiltrados int                     `json:"total_filtrados"`
	Pagina         int                     `json:"pagina"`
	TotalPaginas   int                     `json:"total_paginas"`
}

// deuda is the debt magnitude used by the min/max bounds: positive balances
// owe nothing.
func deuda(c domain.ClienteDetalle) float64 {
	if c.Diferencia < 0 {
		return -c.Diferencia
	}
	return 0
}

// Filtrar applies search and debt filters, returning a new slice.
func Filtrar(clientes []domain.ClienteDetalle, f domain.FiltroClientes) []domain.ClienteDetalle {
	out := make([]domain.ClienteDetalle, 0, len(clientes))

	q := NormalizarNombre(f.Busqueda)
	for _, c := range clientes {
		if q != "" && !strings.Contains(NormalizarNombre(c.Nombre), q) {
			continue
		}
		if f.Estado == domain.DeudaCon && c.Diferencia >= 0 {
			continue
		}
		if f.Estado == domain.DeudaSin && c.Diferencia < 0 {
			continue
		}
		if f.DeudaMin != nil && deuda(c) < *f.DeudaMin {
			continue
		}
		if f.DeudaMax != nil && deuda(c) > *f.DeudaMax {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Ordenar sorts in place by the selected key. Name ordering uses Spanish
// collation; ties keep source order.
func Ordenar(clientes []domain.ClienteDetalle, orden domain.OrdenClientes) {
	switch orden {
	case domain.OrdenTotalDesc:
		sort.SliceStable(clientes, func(i, j int) bool { return clientes[i].Total > clientes[j].Total })
	case domain.OrdenAbonoDesc:
		sort.SliceStable(clientes, func(i, j int) bool { return clientes[i].Abono > clientes[j].Abono })
	case domain.OrdenDiferenciaAsc:
		sort.SliceStable(clientes, func(i, j int) bool { return clientes[i].Diferencia < clientes[j].Diferencia })
	default:
		// a Collator keeps internal buffers, so build one per sort
		colacion := collate.New(language.Spanish, collate.IgnoreCase)
		sort.SliceStable(clientes, func(i, j int) bool {
			return colacion.CompareString(clientes[i].Nombre, clientes[j].Nombre) < 0
		})
	}
}

// ProyectarClientes runs the full projection: filter, sort, clamp the page
// number into range and cut the requested page.
func ProyectarClientes(clientes []domain.ClienteDetalle, f domain.FiltroClientes) ResultadoClientes {
	filtrados := Filtrar(clientes, f)
	Ordenar(filtrados, f.Orden)

	porPagina := f.PorPagina
	if porPagina <= 0 {
		porPagina = 25
	}
	totalPaginas := (len(filtrados) + porPagina - 1) / porPagina
	if totalPaginas < 1 {
		totalPaginas = 1
	}

	pagina := f.Pagina
	if pagina < 1 {
		pagina = 1
	}
	if pagina > totalPaginas {
		pagina = totalPaginas
	}

	inicio := (pagina - 1) * porPagina
	fin := inicio + porPagina
	if inicio > len(filtrados) {
		inicio = len(filtrados)
	}
	if fin > len(filtrados) {
		fin = len(filtrados)
	}

	return ResultadoClientes{
		Clientes:       filtrados[inicio:fin],
		TotalClientes:  len(clientes),
		TotalFiltrados: len(filtrados),
		Pagina:         pagina,
		TotalPaginas:   totalPaginas,
	}
}
