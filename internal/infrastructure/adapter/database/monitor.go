package database

import (
	"sync"
	"time"

	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
)

// PoolStats is a snapshot of the connection pool state.
type PoolStats struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// PoolMonitor periodically samples the database connection pool and
// warns when it is close to exhaustion.
type PoolMonitor struct {
	manager  *Manager
	logger   coreport.Logger
	mutex    sync.RWMutex
	stats    *PoolStats
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewPoolMonitor creates a monitor for the manager's connection pool.
func NewPoolMonitor(manager *Manager, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		manager:  manager,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins sampling the pool at the given interval.
func (m *PoolMonitor) Start(interval time.Duration) {
	m.collect()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collect()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop halts sampling. Safe to call more than once.
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// Stats returns the most recent snapshot.
func (m *PoolMonitor) Stats() PoolStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.stats == nil {
		return PoolStats{}
	}
	return *m.stats
}

func (m *PoolMonitor) collect() {
	sqlDB, err := m.manager.DB().DB()
	if err != nil {
		m.logger.Error("Failed to read connection pool stats", map[string]any{
			"error": err.Error(),
		})
		return
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.stats = &PoolStats{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
