package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockResult struct {
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

type mockJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32
	started   chan struct{}
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.started != nil {
		close(j.started)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{err: errors.New("job error")}
	}
	return &mockResult{}
}

// runAll submits jobs from a separate goroutine and drains the results
func runAll(p *Pool, jobs []Job) []Result {
	go func() {
		defer p.Close()
		for _, j := range jobs {
			if !p.Submit(j) {
				return
			}
		}
	}()

	var results []Result
	for r := range p.Results() {
		results = append(results, r)
	}
	return results
}

func TestNewPool(t *testing.T) {
	ctx := context.Background()
	if p := NewPool(ctx, 5); p.workers != 5 {
		t.Errorf("Expected 5 workers, got %d", p.workers)
	}
	if p := NewPool(ctx, 0); p.workers != 1 {
		t.Errorf("Expected 1 worker for 0 input, got %d", p.workers)
	}
	if p := NewPool(ctx, -1); p.workers != 1 {
		t.Errorf("Expected 1 worker for negative input, got %d", p.workers)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	var executed int32
	count := 50 // more than the channel buffers
	jobs := make([]Job, count)
	for i := range jobs {
		jobs[i] = &mockJob{executed: &executed}
	}

	results := runAll(pool, jobs)

	if len(results) != count {
		t.Errorf("Expected %d results, got %d", count, len(results))
	}
	if n := atomic.LoadInt32(&executed); n != int32(count) {
		t.Errorf("Expected %d executed jobs, got %d", count, n)
	}
}

func TestPool_Concurrency(t *testing.T) {
	workers := 4
	pool := NewPool(context.Background(), workers)
	pool.Start()

	var current, peak int32
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = &concurrencyJob{current: &current, peak: &peak, duration: 5 * time.Millisecond}
	}

	runAll(pool, jobs)

	if p := atomic.LoadInt32(&peak); p > int32(workers) {
		t.Errorf("Peak concurrency %d exceeded %d workers", p, workers)
	}
}

type concurrencyJob struct {
	current, peak *int32
	duration      time.Duration
}

func (j *concurrencyJob) Execute(ctx context.Context) Result {
	n := atomic.AddInt32(j.current, 1)
	for {
		p := atomic.LoadInt32(j.peak)
		if n <= p || atomic.CompareAndSwapInt32(j.peak, p, n) {
			break
		}
	}
	time.Sleep(j.duration)
	atomic.AddInt32(j.current, -1)
	return &mockResult{}
}

func TestPool_ErrorHandling(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	results := runAll(pool, []Job{&mockJob{shouldErr: true}, &mockJob{}})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("Expected 1 error, got %d", failed)
	}
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()
	pool.Shutdown()

	done := make(chan bool)
	go func() {
		done <- pool.Submit(&mockJob{})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Expected Submit to report false after shutdown")
		}
	case <-time.After(time.Second):
		t.Fatal("Submit after shutdown blocked")
	}
}

func TestPool_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	pool.Start()

	started := make(chan struct{})
	if !pool.Submit(&mockJob{duration: 5 * time.Second, started: started}) {
		t.Fatal("Submit failed")
	}
	<-started
	cancel()

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		for range pool.Results() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pool did not stop after parent context was cancelled")
	}
}
