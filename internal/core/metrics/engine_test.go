package metrics

import (
	"math"
	"testing"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

func cliente(nombre string, total, abono, diferencia float64) domain.ClienteDetalle {
	return domain.ClienteDetalle{
		Nombre: nombre, Total: total, Abono: abono, Diferencia: diferencia,
		Meses: map[string]float64{},
	}
}

func casi(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestKPIsPortafolio(t *testing.T) {
	clientes := []domain.ClienteDetalle{
		cliente("Juan Pérez", 120000, 100000, -20000),
		cliente("Ana López", 80000, 80000, 0),
	}
	unicos := []domain.PeriodoUnico{
		{Mes: "Enero", Venta: 200000, Abono: 180000, Diferencia: -20000},
	}

	k := NewEngine(clientes, unicos).KPIs()

	if k.VentaTotal != 200000 || k.AbonoTotal != 180000 || k.DeudaTotal != -20000 {
		t.Errorf("totales = %v %v %v", k.VentaTotal, k.AbonoTotal, k.DeudaTotal)
	}
	if k.TotalClientes != 2 || k.ConDeuda != 1 || k.SinDeuda != 1 {
		t.Errorf("conteos = %d %d %d", k.TotalClientes, k.ConDeuda, k.SinDeuda)
	}
	if k.PctCobrado != 90 {
		t.Errorf("PctCobrado = %v, esperaba 90", k.PctCobrado)
	}
	if k.DeltaVentas != 0 {
		t.Errorf("DeltaVentas = %v", k.DeltaVentas)
	}
	if k.Conciliacion.Estado != domain.ConciliacionOK {
		t.Errorf("conciliación = %+v", k.Conciliacion)
	}
}

// 100000/120000 redondeado a un decimal.
func TestPctCobradoEscenario(t *testing.T) {
	clientes := []domain.ClienteDetalle{cliente("Juan Pérez", 120000, 100000, -20000)}
	k := NewEngine(clientes, nil).KPIs()
	if k.PctCobrado != 83.3 {
		t.Fatalf("PctCobrado = %v, esperaba 83.3", k.PctCobrado)
	}
	if k.ConDeuda != 1 || k.SinDeuda != 0 {
		t.Fatalf("conteos deuda = %d / %d", k.ConDeuda, k.SinDeuda)
	}
}

func TestPctCobradoSinVentas(t *testing.T) {
	clientes := []domain.ClienteDetalle{cliente("a", 0, 0, 0), cliente("b", 0, 0, 0)}
	if k := NewEngine(clientes, nil).KPIs(); k.PctCobrado != 0 {
		t.Fatalf("con venta total 0 el porcentaje debe ser 0, got %v", k.PctCobrado)
	}
}

func TestConciliacion(t *testing.T) {
	casos := []struct {
		nombre string
		unicos []domain.PeriodoUnico
		estado domain.EstadoConciliacion
		delta  float64
	}{
		{"sin datos", nil, domain.ConciliacionSinDatos, 0},
		{"cuadra exacto", []domain.PeriodoUnico{{Venta: 100, Abono: 80, Diferencia: -20}}, domain.ConciliacionOK, 0},
		{"dentro de tolerancia", []domain.PeriodoUnico{{Venta: 100, Abono: 80, Diferencia: -18.5}}, domain.ConciliacionOK, -1.5},
		{"fuera de tolerancia", []domain.PeriodoUnico{{Venta: 100, Abono: 80, Diferencia: -25}}, domain.ConciliacionRevisar, 5},
	}
	for _, tc := range casos {
		got := NewEngine(nil, tc.unicos).Conciliacion()
		if got.Estado != tc.estado || !casi(got.Delta, tc.delta) {
			t.Errorf("%s: %+v, esperaba {%s %v}", tc.nombre, got, tc.estado, tc.delta)
		}
	}
}

func TestActividadMensual(t *testing.T) {
	c1 := cliente("a", 0, 0, 0)
	c1.Meses["Enero"] = 100
	c1.Meses["Febrero"] = 300
	c2 := cliente("b", 0, 0, 0)
	c2.Meses["Enero"] = 100

	e := NewEngine([]domain.ClienteDetalle{c1, c2}, nil)
	actividad := e.ActividadMensual()

	if len(actividad) != 12 {
		t.Fatalf("len = %d", len(actividad))
	}
	enero := actividad[0]
	if enero.Mes != "Enero" || enero.ClientesActivos != 2 || enero.TotalMes != 200 || enero.PromedioPorActivo != 100 {
		t.Errorf("enero = %+v", enero)
	}
	marzo := actividad[2]
	if marzo.ClientesActivos != 0 || marzo.TotalMes != 0 || marzo.PromedioPorActivo != 0 {
		t.Errorf("marzo sin actividad = %+v", marzo)
	}

	// memoized: same slice back on the second call
	if &actividad[0] != &e.ActividadMensual()[0] {
		t.Error("ActividadMensual debe memoizar el último resultado")
	}
}

func TestConcentracionVentas(t *testing.T) {
	var clientes []domain.ClienteDetalle
	for i := 0; i < 10; i++ {
		clientes = append(clientes, cliente("c", float64(100-10*i), 0, 0)) // 100,90,...,10
	}
	clientes = append(clientes, cliente("x", 0, 0, 0), cliente("y", 0, 0, 0))

	got := NewEngine(clientes, nil).ConcentracionVentas(3)
	want := 270.0 / 550.0 * 100
	if !casi(got, want) {
		t.Fatalf("concentración top-3 = %v, esperaba %v", got, want)
	}
}

func TestConcentracionDeuda(t *testing.T) {
	clientes := []domain.ClienteDetalle{
		cliente("a", 0, 0, -100),
		cliente("b", 0, 0, -50),
		cliente("c", 0, 0, -50),
		cliente("d", 0, 0, 200), // positive balances never count as debt
	}
	got := NewEngine(clientes, nil).ConcentracionDeuda(1)
	if !casi(got, 50) {
		t.Fatalf("concentración deuda top-1 = %v, esperaba 50", got)
	}
}

func TestConcentracionSinPoblacion(t *testing.T) {
	if got := NewEngine(nil, nil).ConcentracionVentas(3); got != 0 {
		t.Fatalf("sin clientes = %v", got)
	}
	if got := NewEngine([]domain.ClienteDetalle{cliente("a", 0, 0, 5)}, nil).ConcentracionDeuda(3); got != 0 {
		t.Fatalf("sin deudores = %v", got)
	}
}

func TestCoeficienteVariacion(t *testing.T) {
	c := cliente("a", 0, 0, 0)
	c.Meses["Enero"] = 100
	c.Meses["Febrero"] = 300
	// mean 200, population sd 100 over the two active months
	got := NewEngine([]domain.ClienteDetalle{c}, nil).CoeficienteVariacion()
	if !casi(got, 0.5) {
		t.Fatalf("CV = %v, esperaba 0.5", got)
	}
}

func TestCoeficienteVariacionSinActividad(t *testing.T) {
	if got := NewEngine(nil, nil).CoeficienteVariacion(); got != 0 {
		t.Fatalf("sin actividad = %v", got)
	}
}
