package view

import (
	"testing"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

func clientesDePrueba() []domain.ClienteDetalle {
	return []domain.ClienteDetalle{
		{Nombre: "Zapatería El Trote", Total: 100, Abono: 100, Diferencia: 0},
		{Nombre: "Juan Pérez", Total: 300, Abono: 200, Diferencia: -100},
		{Nombre: "Ana López", Total: 200, Abono: 150, Diferencia: -50},
	}
}

func TestFiltrarBusquedaSinAcentos(t *testing.T) {
	f := domain.NuevoFiltro()
	f.Busqueda = "perez" // no accent, lowercase

	out := Filtrar(clientesDePrueba(), f)
	if len(out) != 1 || out[0].Nombre != "Juan Pérez" {
		t.Fatalf("out = %+v", out)
	}
}

func TestFiltrarEstadoDeuda(t *testing.T) {
	f := domain.NuevoFiltro()
	f.Estado = domain.DeudaCon
	if out := Filtrar(clientesDePrueba(), f); len(out) != 2 {
		t.Fatalf("con_deuda = %d, esperaba 2", len(out))
	}

	f.Estado = domain.DeudaSin
	if out := Filtrar(clientesDePrueba(), f); len(out) != 1 || out[0].Nombre != "Zapatería El Trote" {
		t.Fatalf("sin_deuda = %+v", out)
	}
}

func TestFiltrarRangoDeuda(t *testing.T) {
	menor, mayor := 60.0, 150.0
	f := domain.NuevoFiltro()
	f.DeudaMin = &menor
	f.DeudaMax = &mayor

	out := Filtrar(clientesDePrueba(), f)
	if len(out) != 1 || out[0].Nombre != "Juan Pérez" {
		t.Fatalf("out = %+v", out)
	}
}

func TestOrdenar(t *testing.T) {
	casos := []struct {
		orden   domain.OrdenClientes
		primero string
	}{
		{domain.OrdenNombre, "Ana López"},
		{domain.OrdenTotalDesc, "Juan Pérez"},
		{domain.OrdenAbonoDesc, "Juan Pérez"},
		{domain.OrdenDiferenciaAsc, "Juan Pérez"},
	}
	for _, tc := range casos {
		clientes := clientesDePrueba()
		Ordenar(clientes, tc.orden)
		if clientes[0].Nombre != tc.primero {
			t.Errorf("orden %s: primero = %q, esperaba %q", tc.orden, clientes[0].Nombre, tc.primero)
		}
	}
}

func TestProyectarPaginacion(t *testing.T) {
	f := domain.NuevoFiltro()
	f.Orden = domain.OrdenTotalDesc
	f.PorPagina = 2
	f.Pagina = 2

	r := ProyectarClientes(clientesDePrueba(), f)
	if r.TotalFiltrados != 3 || r.TotalPaginas != 2 || r.Pagina != 2 {
		t.Fatalf("paginación = %+v", r)
	}
	if len(r.Clientes) != 1 || r.Clientes[0].Nombre != "Zapatería El Trote" {
		t.Fatalf("página 2 = %+v", r.Clientes)
	}
}

func TestProyectarPaginaFueraDeRango(t *testing.T) {
	f := domain.NuevoFiltro()
	f.PorPagina = 2
	f.Pagina = 99

	r := ProyectarClientes(clientesDePrueba(), f)
	if r.Pagina != 2 {
		t.Fatalf("la página debe ajustarse al rango: %d", r.Pagina)
	}

	f.Pagina = -3
	if r := ProyectarClientes(clientesDePrueba(), f); r.Pagina != 1 {
		t.Fatalf("página negativa debe ser 1: %d", r.Pagina)
	}
}

func TestProyectarNoMutaElOriginal(t *testing.T) {
	clientes := clientesDePrueba()
	f := domain.NuevoFiltro()
	f.Orden = domain.OrdenTotalDesc
	ProyectarClientes(clientes, f)

	if clientes[0].Nombre != "Zapatería El Trote" {
		t.Fatal("la proyección no debe reordenar la colección canónica")
	}
}

func TestProyectarColeccionVacia(t *testing.T) {
	r := ProyectarClientes(nil, domain.NuevoFiltro())
	if r.TotalPaginas != 1 || r.Pagina != 1 || len(r.Clientes) != 0 {
		t.Fatalf("colección vacía = %+v", r)
	}
}
