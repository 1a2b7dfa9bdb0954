// cmd/reporte/main.go
package main

import (
	"log"

	"github.com/calidadecosanplagas/reporte-financiero/internal/api/handlers"
	"github.com/calidadecosanplagas/reporte-financiero/internal/api/responses"
	"github.com/calidadecosanplagas/reporte-financiero/internal/config"
	"github.com/calidadecosanplagas/reporte-financiero/internal/core/ingest"
	"github.com/calidadecosanplagas/reporte-financiero/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := responses.InitLogger()
	defer logger.Sync()

	cfg := config.Load()

	ingestService := ingest.NewService()
	snapshots := store.New()
	reporteHandler := handlers.NewReporteHandler(ingestService, snapshots, cfg)

	// Best-effort initial load; the service still starts without a workbook
	// and serves data after the first successful upload or reload.
	if reporte, err := ingestService.LoadFile(cfg.WorkbookPath); err != nil {
		logger.Warn("carga inicial del libro falló", zap.String("path", cfg.WorkbookPath), zap.Error(err))
	} else {
		snapshots.Replace(reporte)
		logger.Info("libro cargado",
			zap.String("hoja_detalle", reporte.HojaDetalle),
			zap.String("hoja_unicos", reporte.HojaUnicos),
			zap.Int("clientes", len(reporte.Clientes)),
			zap.Int("periodos", len(reporte.Unicos)))
	}

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		// Sin middleware de auth -- el gateway se encarga de eso
		apiV1.POST("/reporte/cargar", reporteHandler.HandleCargar)
		apiV1.POST("/reporte/recargar", reporteHandler.HandleRecargar)
		apiV1.GET("/reporte/kpis", reporteHandler.HandleKPIs)
		apiV1.GET("/reporte/mensual", reporteHandler.HandleMensual)
		apiV1.GET("/reporte/periodos", reporteHandler.HandlePeriodos)
		apiV1.GET("/reporte/clientes", reporteHandler.HandleClientes)
		apiV1.GET("/reporte/clientes/export", reporteHandler.HandleClientesExport)
		apiV1.GET("/reporte/clientes/:nombre", reporteHandler.HandleCliente)
		apiV1.GET("/reporte/clientes/:nombre/export", reporteHandler.HandleClienteExport)
		apiV1.GET("/reporte/top-deuda", reporteHandler.HandleTopDeuda)
		apiV1.GET("/reporte/top-deuda/export", reporteHandler.HandleTopDeudaExport)
		apiV1.GET("/reporte/top-ventas", reporteHandler.HandleTopVentas)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "reporte-financiero"})
	})

	log.Printf("🚀 Reporte Financiero (Go) iniciado y escuchando en el puerto %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("No se pudo iniciar el servidor del reporte: ", err)
	}
}
