// Package store holds the current report snapshot in memory. One load
// replaces the whole snapshot atomically; there is no merging and no
// persistence. Overlapping reloads are last-write-wins: whichever load
// finishes second owns the snapshot, which matches the single-workbook,
// explicit-reload usage model.
package store

import (
	"sync"
	"time"

	"github.com/calidadecosanplagas/reporte-financiero/internal/core/metrics"
	"github.com/calidadecosanplagas/reporte-financiero/internal/domain"
)

// Snapshot is one successful load: the parsed report, its metrics engine and
// when it was taken.
type Snapshot struct {
	Reporte   *domain.Reporte
	Engine    *metrics.Engine
	CargadoEn time.Time
}

// Store guards the current snapshot. A failed load never touches it, so the
// previous data stays served until a load succeeds.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func New() *Store {
	return &Store{}
}

// Replace installs a new snapshot built from a freshly loaded report.
func (s *Store) Replace(reporte *domain.Reporte) {
	snap := &Snapshot{
		Reporte:   reporte,
		Engine:    metrics.NewEngine(reporte.Clientes, reporte.Unicos),
		CargadoEn: time.Now(),
	}
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

// Get returns the current snapshot, or nil when nothing has loaded yet.
func (s *Store) Get() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
