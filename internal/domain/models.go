// package domain/models.go
package domain

// Meses lists the twelve canonical month column labels of the detail sheet,
// in calendar order.
var Meses = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ClienteDetalle is one row of the detail sheet: a client with its twelve
// monthly amounts, annual total, paid amount and balance. Diferencia is taken
// verbatim from the sheet; it is never recomputed from Total-Abono even when
// the two diverge.
type ClienteDetalle struct {
	Nombre     string             `json:"nombre"`
	Meses      map[string]float64 `json:"meses"`
	Total      float64            `json:"total"`
	Abono      float64            `json:"abono"`
	Diferencia float64            `json:"diferencia"`
}

// PeriodoUnico is one row of the aggregate ("Visitas Únicas") sheet: a
// reporting period with gross, paid and balance amounts. When the sheet has
// no explicit Diferencia column the balance is Abono-Venta.
type PeriodoUnico struct {
	Mes        string  `json:"mes"`
	Venta      float64 `json:"venta"`
	Abono      float64 `json:"abono"`
	Diferencia float64 `json:"diferencia"`
}

// Reporte is the result of one workbook load: both normalized record
// collections plus the names of the source sheets they came from. A reload
// replaces the whole value; records are never merged across loads.
type Reporte struct {
	Clientes    []ClienteDetalle `json:"clientes"`
	Unicos      []PeriodoUnico   `json:"unicos"`
	HojaDetalle string           `json:"hoja_detalle"`
	HojaUnicos  string           `json:"hoja_unicos"`
}

// ActividadMensual summarizes one month across all clients.
type ActividadMensual struct {
	Mes               string  `json:"mes"`
	ClientesActivos   int     `json:"clientes_activos"`
	TotalMes          float64 `json:"total_mes"`
	PromedioPorActivo float64 `json:"promedio_por_activo"`
}

// EstadoConciliacion classifies the aggregate-sheet internal consistency
// check (sum(Abono)-sum(Venta) vs sum(Diferencia)).
type EstadoConciliacion string

const (
	ConciliacionOK       EstadoConciliacion = "ok"
	ConciliacionRevisar  EstadoConciliacion = "revisar"
	ConciliacionSinDatos EstadoConciliacion = "sin_datos"
)

// Conciliacion is the reconciliation KPI: an advisory state plus the signed
// delta that produced it. Never fatal.
type Conciliacion struct {
	Estado EstadoConciliacion `json:"estado"`
	Delta  float64            `json:"delta"`
}

// KPIs bundles the portfolio-level scalar indicators computed from the two
// record collections.
type KPIs struct {
	VentaTotal    float64 `json:"venta_total"`
	AbonoTotal    float64 `json:"abono_total"`
	DeudaTotal    float64 `json:"deuda_total"`
	TotalClientes int     `json:"total_clientes"`
	ConDeuda      int     `json:"con_deuda"`
	SinDeuda      int     `json:"sin_deuda"`
	PctCobrado    float64 `json:"pct_cobrado"`

	UnicosVenta      float64 `json:"unicos_venta"`
	UnicosAbono      float64 `json:"unicos_abono"`
	UnicosDiferencia float64 `json:"unicos_diferencia"`
	UnicosPeriodos   int     `json:"unicos_periodos"`

	Conciliacion Conciliacion `json:"conciliacion"`
	DeltaVentas  float64      `json:"delta_ventas"`
}

// EstadoDeuda filters clients by the sign of their balance.
type EstadoDeuda string

const (
	DeudaTodos EstadoDeuda = "all"
	DeudaCon   EstadoDeuda = "con_deuda"
	DeudaSin   EstadoDeuda = "sin_deuda"
)

// OrdenClientes selects the sort key of the client projection.
type OrdenClientes string

const (
	OrdenNombre        OrdenClientes = "nombre"
	OrdenTotalDesc     OrdenClientes = "total_desc"
	OrdenAbonoDesc     OrdenClientes = "abono_desc"
	OrdenDiferenciaAsc OrdenClientes = "diferencia_asc"
)

// FiltroClientes is the transient projection state of the client table:
// free-text search, debt filters, sort key and pagination. It parametrizes a
// pure projection and never mutates the underlying collection. DeudaMin and
// DeudaMax bound the debt magnitude max(0, -Diferencia); nil means unbounded.
type FiltroClientes struct {
	Busqueda  string
	Estado    EstadoDeuda
	DeudaMin  *float64
	DeudaMax  *float64
	Orden     OrdenClientes
	Pagina    int
	PorPagina int
}

// NuevoFiltro returns the default projection state (everything, by name,
// first page of 25).
func NuevoFiltro() FiltroClientes {
	return FiltroClientes{
		Estado:    DeudaTodos,
		Orden:     OrdenNombre,
		Pagina:    1,
		PorPagina: 25,
	}
}
