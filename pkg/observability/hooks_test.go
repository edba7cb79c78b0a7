package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// countingHooks counts layout and HTTP events.
type countingHooks struct {
	NoopPipelineHooks
	NoopHTTPHooks

	mu        sync.Mutex
	layouts   int
	failures  int
	responses map[int]int
}

func (h *countingHooks) OnLayoutComplete(_ context.Context, _, _ string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts++
	if err != nil {
		h.failures++
	}
}

func (h *countingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.responses == nil {
		h.responses = map[int]int{}
	}
	h.responses[status]++
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	ctx := context.Background()
	Pipeline().OnTableStart(ctx, "SAMPLE", 60)
	Pipeline().OnTableComplete(ctx, "SAMPLE", 0, time.Second, nil)
	Cache().OnCacheSet(ctx, "artifact", 1024)
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingHooks{}
	SetPipelineHooks(h)
	SetHTTPHooks(h)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 1 {
				err = context.Canceled
			}
			Pipeline().OnLayoutComplete(ctx, "OR", "305", time.Microsecond, err)
			HTTP().OnResponse(ctx, "GET", "/v1/layout", 200, time.Millisecond)
		}(i)
	}
	wg.Wait()

	if h.layouts != 8 || h.failures != 4 {
		t.Errorf("layouts = %d, failures = %d, want 8 and 4", h.layouts, h.failures)
	}
	if h.responses[200] != 8 {
		t.Errorf("responses[200] = %d, want 8", h.responses[200])
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingHooks{}
	SetPipelineHooks(h)
	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Pipeline() != PipelineHooks(h) {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should keep the default")
	}
}
