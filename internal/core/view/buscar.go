package view

import (
	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"

	"github.com/schollz/closestmatch"
)

// TopDeuda ranks the n most indebted clients, most negative balance first.
func TopDeuda(clientes []domain.ClienteDetalle, n int) []domain.ClienteDetalle {
	out := make([]domain.ClienteDetalle, len(clientes))
	copy(out, clientes)
	Ordenar(out, domain.OrdenDiferenciaAsc)
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// TopVentas ranks the n highest-billing clients, largest total first.
func TopVentas(clientes []domain.ClienteDetalle, n int) []domain.ClienteDetalle {
	out := make([]domain.ClienteDetalle, len(clientes))
	copy(out, clientes)
	Ordenar(out, domain.OrdenTotalDesc)
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// BuscarCliente looks up a client by name, accent- and case-insensitively.
// On a miss it returns the closest-sounding known name as a suggestion, so a
// caller that typo'd "Juan Peres" still gets pointed at "Juan Pérez".
func BuscarCliente(clientes []domain.ClienteDetalle, nombre string) (*domain.ClienteDetalle, string) {
	key := NormalizarNombre(nombre)
	if key == "" {
		return nil, ""
	}

	porClave := make(map[string]int, len(clientes))
	claves := make([]string, 0, len(clientes))
	for i, c := range clientes {
		k := NormalizarNombre(c.Nombre)
		if _, ok := porClave[k]; !ok {
			porClave[k] = i
			claves = append(claves, k)
		}
	}

	if i, ok := porClave[key]; ok {
		return &clientes[i], ""
	}

	if len(claves) == 0 {
		return nil, ""
	}
	cm := closestmatch.New(claves, []int{3, 4})
	if match := cm.Closest(key); match != "" {
		if i, ok := porClave[match]; ok {
			return nil, clientes[i].Nombre
		}
	}
	return nil, ""
}
