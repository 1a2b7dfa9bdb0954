package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/calidadecosanplagas/reporte-financiero/internal/api/responses"
	"github.com/calidadecosanplagas/reporte-financiero/internal/config"
	"github.com/calidadecosanplagas/reporte-financiero/internal/core/ingest"
	"github.com/calidadecosanplagas/reporte-financiero/internal/core/view"
	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
	"github.com/calidadecosanplagas/reporte-financiero/internal/store"

	"github.com/gin-gonic/gin"
)

// ReporteHandler serves the report API: loading the workbook and serving the
// normalized records, KPIs and exports built from the current snapshot.
type ReporteHandler struct {
	service ingest.Service
	store   *store.Store
	cfg     *config.Config
}

// NewReporteHandler creates a new report handler.
func NewReporteHandler(service ingest.Service, st *store.Store, cfg *config.Config) *ReporteHandler {
	return &ReporteHandler{service: service, store: st, cfg: cfg}
}

// snapshot fetches the current snapshot or answers 404 when nothing has been
// loaded yet.
func (h *ReporteHandler) snapshot(c *gin.Context) *store.Snapshot {
	snap := h.store.Get()
	if snap == nil {
		responses.Error(c, http.StatusNotFound, "No hay reporte cargado; use /reporte/recargar o suba un archivo")
		return nil
	}
	return snap
}

// HandleCargar receives a workbook upload and replaces the snapshot with its
// contents. A failed parse leaves the previous snapshot serving.
func (h *ReporteHandler) HandleCargar(c *gin.Context) {
	fileHeader, err := c.FormFile("reporteFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Archivo de reporte (.xls, .xlsx) no encontrado o inválido")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "No se pudo abrir el archivo de reporte")
		return
	}
	defer file.Close()

	reporte, err := h.service.Load(file)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Error al procesar el libro", err.Error())
		return
	}

	h.store.Replace(reporte)
	responses.Success(c, h.resumenCarga(reporte), "Reporte cargado")
}

// HandleRecargar re-reads the workbook from the configured path.
func (h *ReporteHandler) HandleRecargar(c *gin.Context) {
	reporte, err := h.service.LoadFile(h.cfg.WorkbookPath)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Error al recargar el libro", err.Error())
		return
	}

	h.store.Replace(reporte)
	responses.Success(c, h.resumenCarga(reporte), "Reporte recargado")
}

func (h *ReporteHandler) resumenCarga(r *domain.Reporte) gin.H {
	return gin.H{
		"hoja_detalle": r.HojaDetalle,
		"hoja_unicos":  r.HojaUnicos,
		"clientes":     len(r.Clientes),
		"periodos":     len(r.Unicos),
	}
}

// HandleKPIs serves the portfolio indicators plus the derived concentration
// and variability figures.
func (h *ReporteHandler) HandleKPIs(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	kpis := snap.Engine.KPIs()
	responses.Success(c, gin.H{
		"kpis": kpis,
		"formato": gin.H{
			"venta_total": view.FormatCLP(kpis.VentaTotal),
			"abono_total": view.FormatCLP(kpis.AbonoTotal),
			"deuda_total": view.FormatCLP(kpis.DeudaTotal),
		},
		"concentracion_ventas":  snap.Engine.ConcentracionVentas(h.limit(c, "top", 3)),
		"concentracion_deuda":   snap.Engine.ConcentracionDeuda(h.limit(c, "top", 3)),
		"coeficiente_variacion": snap.Engine.CoeficienteVariacion(),
		"cargado_en":            snap.CargadoEn.Format(time.RFC3339),
	}, "")
}

// HandleMensual serves the per-month activity summary.
func (h *ReporteHandler) HandleMensual(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}
	responses.Success(c, snap.Engine.ActividadMensual(), "")
}

// HandlePeriodos serves the aggregate-sheet records.
func (h *ReporteHandler) HandlePeriodos(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}
	responses.Success(c, snap.Reporte.Unicos, "")
}

// filtroFromQuery builds the projection state from query parameters. Debt
// bounds accept the same locale formatting as the spreadsheet cells.
func filtroFromQuery(c *gin.Context) domain.FiltroClientes {
	f := domain.NuevoFiltro()

	f.Busqueda = c.Query("q")

	switch domain.EstadoDeuda(c.Query("estado")) {
	case domain.DeudaCon:
		f.Estado = domain.DeudaCon
	case domain.DeudaSin:
		f.Estado = domain.DeudaSin
	}

	switch domain.OrdenClientes(c.Query("orden")) {
	case domain.OrdenTotalDesc:
		f.Orden = domain.OrdenTotalDesc
	case domain.OrdenAbonoDesc:
		f.Orden = domain.OrdenAbonoDesc
	case domain.OrdenDiferenciaAsc:
		f.Orden = domain.OrdenDiferenciaAsc
	}

	if v := strings.TrimSpace(c.Query("deuda_min")); v != "" {
		min := ingest.ParseCLP(v)
		f.DeudaMin = &min
	}
	if v := strings.TrimSpace(c.Query("deuda_max")); v != "" {
		max := ingest.ParseCLP(v)
		f.DeudaMax = &max
	}

	if n, err := strconv.Atoi(c.Query("pagina")); err == nil && n > 0 {
		f.Pagina = n
	}
	if n, err := strconv.Atoi(c.Query("por_pagina")); err == nil && n > 0 {
		f.PorPagina = n
	}
	return f
}

// HandleClientes serves one page of the filtered and sorted client table.
func (h *ReporteHandler) HandleClientes(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}
	resultado := view.ProyectarClientes(snap.Reporte.Clientes, filtroFromQuery(c))
	responses.Success(c, resultado, "")
}

// HandleClientesExport downloads the whole filtered table (no pagination) as
// CSV, in the projection's current order.
func (h *ReporteHandler) HandleClientesExport(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	f := filtroFromQuery(c)
	filtrados := view.Filtrar(snap.Reporte.Clientes, f)
	view.Ordenar(filtrados, f.Orden)

	data, err := view.ExportarClientes(filtrados)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Error al generar el CSV", err.Error())
		return
	}
	h.entregarCSV(c, "clientes_filtrados", data)
}

// HandleCliente serves one client's record. On a miss the response carries
// the closest known name as a suggestion.
func (h *ReporteHandler) HandleCliente(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	cliente, sugerencia := view.BuscarCliente(snap.Reporte.Clientes, c.Param("nombre"))
	if cliente == nil {
		if sugerencia != "" {
			responses.Error(c, http.StatusNotFound, "Cliente no encontrado", fmt.Sprintf("¿Quiso decir %q?", sugerencia))
			return
		}
		responses.Error(c, http.StatusNotFound, "Cliente no encontrado")
		return
	}
	responses.Success(c, cliente, "")
}

// HandleClienteExport downloads one client's month breakdown as CSV.
func (h *ReporteHandler) HandleClienteExport(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	cliente, _ := view.BuscarCliente(snap.Reporte.Clientes, c.Param("nombre"))
	if cliente == nil {
		responses.Error(c, http.StatusNotFound, "Cliente no encontrado")
		return
	}

	data, err := view.ExportarCliente(*cliente)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Error al generar el CSV", err.Error())
		return
	}
	base := strings.ReplaceAll(strings.ToLower(view.NormalizarNombre(cliente.Nombre)), " ", "_")
	h.entregarCSV(c, "cliente_"+base, data)
}

// HandleTopDeuda serves the debt ranking.
func (h *ReporteHandler) HandleTopDeuda(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}
	responses.Success(c, view.TopDeuda(snap.Reporte.Clientes, h.limit(c, "limite", h.cfg.TopDeuda)), "")
}

// HandleTopDeudaExport downloads the debt ranking as CSV.
func (h *ReporteHandler) HandleTopDeudaExport(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}

	top := view.TopDeuda(snap.Reporte.Clientes, h.limit(c, "limite", h.cfg.TopDeuda))
	data, err := view.ExportarTopDeuda(top)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Error al generar el CSV", err.Error())
		return
	}
	h.entregarCSV(c, "top_deuda", data)
}

// HandleTopVentas serves the billing ranking.
func (h *ReporteHandler) HandleTopVentas(c *gin.Context) {
	snap := h.snapshot(c)
	if snap == nil {
		return
	}
	responses.Success(c, view.TopVentas(snap.Reporte.Clientes, h.limit(c, "limite", h.cfg.TopVentas)), "")
}

func (h *ReporteHandler) limit(c *gin.Context, key string, fallback int) int {
	if n, err := strconv.Atoi(c.Query(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func (h *ReporteHandler) entregarCSV(c *gin.Context, base string, data []byte) {
	fileName := fmt.Sprintf("%s_%s.csv", base, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/csv; charset=windows-1252", data)
}
