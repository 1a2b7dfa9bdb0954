package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

// Fatal ingestion errors. A workbook without both required sheets yields no
// partial result; the message names the expected header labels so the input
// can be fixed.
var (
	ErrHojaDetalle = errors.New("no se encontró la hoja Detalle Clientes (encabezado: Nombre Cliente, meses Enero..Diciembre, Total, Abono, Diferencia)")
	ErrHojaUnicos  = errors.New("no se encontró la hoja Visitas Únicas (encabezado: Mes/Nombre, Venta, Abono, Diferencia)")
)

// Service defines the workbook ingestion pipeline. Load is stateless: every
// call parses the bytes from scratch and the caller owns the result, so
// reloading is pure replacement and never accumulates prior state.
type Service interface {
	Load(r io.Reader) (*domain.Reporte, error)
	LoadFile(path string) (*domain.Reporte, error)
}

type service struct{}

// NewService creates a new ingestion service.
func NewService() Service {
	return &service{}
}

func (s *service) Load(r io.Reader) (*domain.Reporte, error) {
	sheets, err := ReadWorkbook(r)
	if err != nil {
		return nil, err
	}

	detalle, unicos := ClassifySheets(sheets)
	if detalle == nil {
		return nil, ErrHojaDetalle
	}
	if unicos == nil {
		return nil, ErrHojaUnicos
	}

	return &domain.Reporte{
		Clientes:    ParseDetalle(detalle.Rows, detalle.HeaderRow),
		Unicos:      ParseUnicos(unicos.Rows, unicos.HeaderRow),
		HojaDetalle: detalle.Name,
		HojaUnicos:  unicos.Name,
	}, nil
}

func (s *service) LoadFile(path string) (*domain.Reporte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el libro en %s: %w", path, err)
	}
	defer f.Close()

	reporte, err := s.Load(f)
	if err != nil {
		return nil, fmt.Errorf("error al cargar %s: %w", path, err)
	}
	return reporte, nil
}
