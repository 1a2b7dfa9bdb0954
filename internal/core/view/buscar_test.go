package view

import (
	"testing"
)

func TestBuscarClienteExacto(t *testing.T) {
	clientes := clientesDePrueba()

	c, sugerencia := BuscarCliente(clientes, "juan perez") // accents and case ignored
	if c == nil || c.Nombre != "Juan Pérez" {
		t.Fatalf("c = %+v", c)
	}
	if sugerencia != "" {
		t.Fatalf("sugerencia = %q", sugerencia)
	}
}

func TestBuscarClienteSugerencia(t *testing.T) {
	c, sugerencia := BuscarCliente(clientesDePrueba(), "Juan Peres")
	if c != nil {
		t.Fatalf("no debe haber coincidencia exacta: %+v", c)
	}
	if sugerencia != "Juan Pérez" {
		t.Fatalf("sugerencia = %q, esperaba Juan Pérez", sugerencia)
	}
}

func TestBuscarClienteVacio(t *testing.T) {
	if c, s := BuscarCliente(clientesDePrueba(), "   "); c != nil || s != "" {
		t.Fatalf("consulta vacía = %v / %q", c, s)
	}
	if c, s := BuscarCliente(nil, "Juan"); c != nil || s != "" {
		t.Fatalf("colección vacía = %v / %q", c, s)
	}
}

func TestTopDeuda(t *testing.T) {
	top := TopDeuda(clientesDePrueba(), 2)
	if len(top) != 2 || top[0].Nombre != "Juan Pérez" || top[1].Nombre != "Ana López" {
		t.Fatalf("top = %+v", top)
	}
}

func TestTopVentas(t *testing.T) {
	top := TopVentas(clientesDePrueba(), 1)
	if len(top) != 1 || top[0].Nombre != "Juan Pérez" {
		t.Fatalf("top = %+v", top)
	}
}

func TestTopNoMutaElOriginal(t *testing.T) {
	clientes := clientesDePrueba()
	TopDeuda(clientes, 2)
	if clientes[0].Nombre != "Zapatería El Trote" {
		t.Fatal("el ranking no debe reordenar la colección canónica")
	}
}
