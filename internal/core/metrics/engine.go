// Package metrics computes portfolio KPIs over the normalized record
// collections. Everything here is pure given its inputs: no I/O, no mutation
// of the collections. The engine only caches the most recent monthly activity
// summary, which chart and export consumers request repeatedly per load.
package metrics

import (
	"math"
	"sort"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

// ToleranciaConciliacion is the absolute delta, in currency units, under
// which the aggregate sheet is considered internally consistent.
const ToleranciaConciliacion = 2.0

// Engine evaluates KPIs for one loaded report. Build a fresh Engine per load;
// replacing the collections means replacing the engine.
type Engine struct {
	clientes []domain.ClienteDetalle
	unicos   []domain.PeriodoUnico

	mensual []domain.ActividadMensual // memoized
}

// NewEngine creates an engine over the given collections. The slices are
// read, never mutated.
func NewEngine(clientes []domain.ClienteDetalle, unicos []domain.PeriodoUnico) *Engine {
	return &Engine{clientes: clientes, unicos: unicos}
}

// KPIs computes the portfolio scalar indicators.
func (e *Engine) KPIs() domain.KPIs {
	var k domain.KPIs

	for _, c := range e.clientes {
		k.VentaTotal += c.Total
		k.AbonoTotal += c.Abono
		k.DeudaTotal += c.Diferencia
		if c.Diferencia < 0 {
			k.ConDeuda++
		} else {
			k.SinDeuda++
		}
	}
	k.TotalClientes = len(e.clientes)

	if k.VentaTotal > 0 {
		k.PctCobrado = math.Round(k.AbonoTotal/k.VentaTotal*1000) / 10
	}

	for _, u := range e.unicos {
		k.UnicosVenta += u.Venta
		k.UnicosAbono += u.Abono
		k.UnicosDiferencia += u.Diferencia
	}
	k.UnicosPeriodos = len(e.unicos)

	k.Conciliacion = e.Conciliacion()
	k.DeltaVentas = k.VentaTotal - k.UnicosVenta

	return k
}

// Conciliacion checks the aggregate sheet against itself: the signed gap
// between sum(Abono)-sum(Venta) and sum(Diferencia). Within tolerance the
// sheet is consistent; beyond it the KPI flags "revisar" with the delta. An
// empty aggregate collection reports sin_datos rather than either verdict.
func (e *Engine) Conciliacion() domain.Conciliacion {
	if len(e.unicos) == 0 {
		return domain.Conciliacion{Estado: domain.ConciliacionSinDatos}
	}

	var venta, abono, diferencia float64
	for _, u := range e.unicos {
		venta += u.Venta
		abono += u.Abono
		diferencia += u.Diferencia
	}

	delta := (abono - venta) - diferencia
	if math.Abs(delta) > ToleranciaConciliacion {
		return domain.Conciliacion{Estado: domain.ConciliacionRevisar, Delta: delta}
	}
	return domain.Conciliacion{Estado: domain.ConciliacionOK, Delta: delta}
}

// ActividadMensual summarizes each canonical month across all clients: how
// many clients billed a positive amount, the month's total, and the average
// per active client (0 when nobody was active). The result is memoized until
// the engine is replaced.
func (e *Engine) ActividadMensual() []domain.ActividadMensual {
	if e.mensual != nil {
		return e.mensual
	}

	out := make([]domain.ActividadMensual, 0, len(domain.Meses))
	for _, mes := range domain.Meses {
		var act domain.ActividadMensual
		act.Mes = mes
		for _, c := range e.clientes {
			monto := c.Meses[mes]
			act.TotalMes += monto
			if monto > 0 {
				act.ClientesActivos++
			}
		}
		if act.ClientesActivos > 0 {
			act.PromedioPorActivo = act.TotalMes / float64(act.ClientesActivos)
		}
		out = append(out, act)
	}

	e.mensual = out
	return out
}

// ConcentracionVentas returns the share of total billing held by the top n
// clients by Total, as a percentage of the whole portfolio. 0 when the
// portfolio bills nothing.
func (e *Engine) ConcentracionVentas(n int) float64 {
	montos := make([]float64, 0, len(e.clientes))
	var total float64
	for _, c := range e.clientes {
		montos = append(montos, c.Total)
		total += c.Total
	}
	return concentracion(montos, n, total)
}

// ConcentracionDeuda returns the share of total debt magnitude held by the n
// most indebted clients (most negative Diferencia). Only negative balances
// count, summed as absolute values.
func (e *Engine) ConcentracionDeuda(n int) float64 {
	var deudas []float64
	var total float64
	for _, c := range e.clientes {
		if c.Diferencia < 0 {
			d := -c.Diferencia
			deudas = append(deudas, d)
			total += d
		}
	}
	return concentracion(deudas, n, total)
}

func concentracion(montos []float64, n int, total float64) float64 {
	if total <= 0 || n <= 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(montos)))
	if n > len(montos) {
		n = len(montos)
	}
	var top float64
	for _, m := range montos[:n] {
		top += m
	}
	return top / total * 100
}

// CoeficienteVariacion measures how uneven billing is across the year: the
// population standard deviation of monthly totals divided by their mean,
// considering only months with activity. 0 when the mean is 0.
func (e *Engine) CoeficienteVariacion() float64 {
	var activos []float64
	for _, act := range e.ActividadMensual() {
		if act.TotalMes != 0 {
			activos = append(activos, act.TotalMes)
		}
	}
	if len(activos) == 0 {
		return 0
	}

	var suma float64
	for _, v := range activos {
		suma += v
	}
	media := suma / float64(len(activos))
	if media == 0 {
		return 0
	}

	var varianza float64
	for _, v := range activos {
		varianza += (v - media) * (v - media)
	}
	varianza /= float64(len(activos))

	return math.Sqrt(varianza) / media
}
