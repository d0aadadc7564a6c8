// Package bulk runs asynchronous export jobs that stream generated
// records to NDJSON files. Jobs are tracked in memory; output files
// land in the configured export directory and are written atomically
// (temp file plus rename), so a crashed or cancelled job never leaves
// a partial export behind.
package bulk

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/hlynes/personagen/internal/logger"
	"github.com/hlynes/personagen/persona"
)

// chunkSize is the number of records each worker generates per unit of
// work. Chunks map to disjoint global-index ranges, so workers never
// contend and the output order is restored by chunk index.
const chunkSize = 1000

// Config controls where and how exports run.
type Config struct {
	// Dir receives the output files. Created if missing.
	Dir string

	// Workers is the number of generation goroutines per job.
	// Defaults to the number of CPUs.
	Workers int
}

// Manager owns the export jobs. All methods are safe for concurrent
// use.
type Manager struct {
	gen     *persona.Generator
	dir     string
	workers int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu   sync.RWMutex
	jobs map[string]*export
}

// export pairs a job's mutable state with its cancel handle.
type export struct {
	state  Job
	req    Request
	cancel context.CancelFunc
}

// NewManager creates a manager writing into cfg.Dir.
func NewManager(gen *persona.Generator, cfg Config) (*Manager, error) {
	if cfg.Dir == "" {
		cfg.Dir = "exports"
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("bulk: failed to create export directory: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		gen:     gen,
		dir:     cfg.Dir,
		workers: cfg.Workers,
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(map[string]*export),
	}, nil
}

// Submit validates the request by generating its first record, so an
// invalid seed or unknown locale fails here rather than inside the
// job, then starts the export in the background.
func (m *Manager) Submit(req Request) (*Job, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("bulk: count %d is not positive", req.Count)
	}
	if _, err := m.gen.At(req.Locale, req.Seed, req.Start); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(m.ctx)
	e := &export{
		state: Job{
			ID:        uuid.NewString(),
			Locale:    req.Locale,
			Seed:      req.Seed,
			Start:     req.Start,
			Count:     req.Count,
			State:     StateQueued,
			CreatedAt: time.Now().UTC(),
		},
		req:    req,
		cancel: cancel,
	}
	if req.Filter != nil {
		e.state.Filter = req.Filter.Expression()
	}

	m.mu.Lock()
	m.jobs[e.state.ID] = e
	m.mu.Unlock()

	m.wg.Add(1)
	go m.run(ctx, e)

	return m.snapshot(e), nil
}

// Job returns a snapshot of the job with the given id.
func (m *Manager) Job(id string) (*Job, error) {
	m.mu.RLock()
	e, ok := m.jobs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return m.snapshot(e), nil
}

// Jobs returns snapshots of all known jobs, newest first.
func (m *Manager) Jobs() []*Job {
	m.mu.RLock()
	exports := make([]*export, 0, len(m.jobs))
	for _, e := range m.jobs {
		exports = append(exports, e)
	}
	m.mu.RUnlock()

	jobs := make([]*Job, 0, len(exports))
	for _, e := range exports {
		jobs = append(jobs, m.snapshot(e))
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs
}

// Cancel stops a queued or running job. The job transitions to
// cancelled once its workers have stopped and the partial output file
// has been removed.
func (m *Manager) Cancel(id string) error {
	m.mu.Lock()
	e, ok := m.jobs[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if e.state.Finished() {
		state := e.state.State
		m.mu.Unlock()
		return fmt.Errorf("%w: %s is %s", ErrFinished, id, state)
	}
	m.mu.Unlock()

	e.cancel()
	return nil
}

// Close cancels every unfinished job and waits for the workers to
// stop. Completed output files are left in place.
func (m *Manager) Close() error {
	m.cancel()
	m.wg.Wait()
	return nil
}

func (m *Manager) snapshot(e *export) *Job {
	m.mu.RLock()
	j := e.state
	m.mu.RUnlock()

	if j.OutputBytes > 0 {
		j.OutputSize = humanize.Bytes(uint64(j.OutputBytes))
	}
	return &j
}

func (m *Manager) run(ctx context.Context, e *export) {
	defer m.wg.Done()

	m.mu.Lock()
	e.state.State = StateRunning
	id, loc, count := e.state.ID, e.state.Locale, e.state.Count
	m.mu.Unlock()

	logger.Info("export started", "job", id, "locale", loc, "count", count)

	err := m.write(ctx, e)
	now := time.Now().UTC()

	m.mu.Lock()
	e.state.FinishedAt = &now
	switch {
	case err == nil:
		e.state.State = StateCompleted
	case errors.Is(err, context.Canceled):
		e.state.State = StateCancelled
	default:
		e.state.State = StateFailed
		e.state.Error = err.Error()
	}
	state, written, bytes := e.state.State, e.state.Written, e.state.OutputBytes
	m.mu.Unlock()

	switch state {
	case StateCompleted:
		logger.Info("export completed", "job", id, "written", written, "bytes", bytes)
	case StateCancelled:
		logger.Info("export cancelled", "job", id)
	default:
		logger.Error("export failed", "job", id, "error", err)
	}
}

// write produces the output file. The temp file is renamed into place
// only after every record has been flushed, and removed on any other
// outcome.
func (m *Manager) write(ctx context.Context, e *export) error {
	final := filepath.Join(m.dir, e.state.ID+".ndjson")
	tmp := final + ".tmp"

	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriterSize(out, 1<<16)
	if err := m.generate(ctx, e, json.NewEncoder(w)); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close output file: %w", err)
	}

	info, err := os.Stat(tmp)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to stat output file: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move output file into place: %w", err)
	}

	m.mu.Lock()
	e.state.OutputFile = final
	e.state.OutputBytes = info.Size()
	m.mu.Unlock()
	return nil
}

type chunkResult struct {
	index   int
	records []persona.Record
	err     error
}

// generate fans chunk generation out over the workers and writes the
// results back in chunk order. Each chunk covers a disjoint range of
// global indices, so the assembled output is identical to a
// single-threaded run.
func (m *Manager) generate(ctx context.Context, e *export, enc *json.Encoder) error {
	loc, seed, start, count := e.req.Locale, e.req.Seed, e.req.Start, e.req.Count
	chunks := (count + chunkSize - 1) / chunkSize

	indexes := make(chan int)
	results := make(chan chunkResult, m.workers)

	var wg sync.WaitGroup
	for range m.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					results <- chunkResult{index: idx, err: err}
					continue
				}
				n := chunkSize
				if idx == chunks-1 {
					n = count - idx*chunkSize
				}
				recs, err := m.gen.Series(loc, seed, start+int64(idx)*chunkSize, n)
				results <- chunkResult{index: idx, records: recs, err: err}
			}
		}()
	}

	go func() {
		for idx := range chunks {
			indexes <- idx
		}
		close(indexes)
	}()

	// Reorder buffer: chunks arrive in completion order and leave in
	// index order. On the first error the job context is cancelled and
	// the remaining results are drained so the workers can exit.
	pending := make(map[int][]persona.Record)
	next := 0
	var firstErr error

	for received := 0; received < chunks; received++ {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				e.cancel()
			}
			continue
		}
		if firstErr != nil {
			continue
		}

		pending[res.index] = res.records
		for {
			recs, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := m.writeChunk(e, enc, recs); err != nil {
				firstErr = err
				e.cancel()
				break
			}
			next++
		}
	}
	wg.Wait()

	return firstErr
}

func (m *Manager) writeChunk(e *export, enc *json.Encoder, recs []persona.Record) error {
	kept := recs
	if e.req.Filter != nil {
		var err error
		kept, err = e.req.Filter.Apply(recs)
		if err != nil {
			return err
		}
	}

	for i := range kept {
		if err := enc.Encode(&kept[i]); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	m.mu.Lock()
	e.state.Generated += len(recs)
	e.state.Written += len(kept)
	m.mu.Unlock()
	return nil
}
