package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/metrics"
	"github.com/guttosm/area-length-service/internal/service"
)

// AsyncLoggerConfig sizes the activity log queue and its writers.
type AsyncLoggerConfig struct {
	// BufferSize is the queue capacity. Entries beyond it are dropped.
	BufferSize int
	// NumWorkers is the number of writer goroutines.
	NumWorkers int
	// BatchSize is the largest number of entries written in one call.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits in a worker.
	FlushInterval time.Duration
	// WriteTimeout applies to each storage call.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the configuration used by the service.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: 500 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
	}
}

func (c AsyncLoggerConfig) normalized() AsyncLoggerConfig {
	d := DefaultAsyncLoggerConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = d.BufferSize
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = d.NumWorkers
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 1
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = d.FlushInterval
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	return c
}

// AsyncLoggerStats counts entries by outcome.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// AsyncLogger persists activity entries off the request path. A fixed pool
// of workers drains a bounded queue and writes entries in batches.
type AsyncLogger struct {
	sink  service.LoggingService
	cfg   AsyncLoggerConfig
	queue chan *model.LogEntry
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the workers. It returns nil for a nil sink.
func NewAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if sink == nil {
		return nil
	}
	cfg = cfg.normalized()

	al := &AsyncLogger{
		sink:  sink,
		cfg:   cfg,
		queue: make(chan *model.LogEntry, cfg.BufferSize),
		done:  make(chan struct{}),
	}
	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.run()
	}
	return al
}

func (al *AsyncLogger) run() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := al.newBatch()
	for {
		select {
		case entry := <-al.queue:
			batch = append(batch, entry)
			if len(batch) >= al.cfg.BatchSize {
				batch = al.flush(batch)
			}
		case <-ticker.C:
			batch = al.flush(batch)
		case <-al.done:
			for {
				select {
				case entry := <-al.queue:
					batch = append(batch, entry)
					if len(batch) >= al.cfg.BatchSize {
						batch = al.flush(batch)
					}
				default:
					al.flush(batch)
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) newBatch() []*model.LogEntry {
	return make([]*model.LogEntry, 0, al.cfg.BatchSize)
}

// flush writes batch and returns an empty one. The written slice is never
// reused since the sink may keep a reference to it.
func (al *AsyncLogger) flush(batch []*model.LogEntry) []*model.LogEntry {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	var err error
	if len(batch) == 1 {
		err = al.sink.CreateLog(ctx, batch[0])
	} else {
		err = al.sink.CreateLogs(ctx, batch)
	}

	n := int64(len(batch))
	if err != nil {
		al.failed.Add(n)
		metrics.RecordActivityLog(metrics.ActivityLogFailed, len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to persist activity log entries")
	} else {
		al.written.Add(n)
		metrics.RecordActivityLog(metrics.ActivityLogWritten, len(batch))
	}
	return al.newBatch()
}

// Log queues entry without blocking. It reports false when the queue is
// full or the logger has been stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case <-al.done:
		al.dropped.Add(1)
		metrics.RecordActivityLog(metrics.ActivityLogDropped, 1)
		return false
	default:
	}

	select {
	case al.queue <- entry:
		al.enqueued.Add(1)
		metrics.RecordActivityLog(metrics.ActivityLogEnqueued, 1)
		return true
	default:
		al.dropped.Add(1)
		metrics.RecordActivityLog(metrics.ActivityLogDropped, 1)
		return false
	}
}

// Stop flushes queued entries and waits for the workers. Safe to call twice.
func (al *AsyncLogger) Stop() {
	al.once.Do(func() {
		close(al.done)
	})
	al.wg.Wait()
}

// Stats returns a snapshot of the counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger starts the process-wide logger, stopping any previous one.
func InitAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(sink, cfg)
}

// GetAsyncLogger returns the process-wide logger, or nil when none runs.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and clears the process-wide logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
