package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "material_data.xlsx")
	p.OnLoadComplete(ctx, "material_data.xlsx", 100, time.Second, nil)
	p.OnBuildStart(ctx, "Density", "Young Modulus", 8)
	p.OnBuildComplete(ctx, "Density", "Young Modulus", time.Second, nil)
	p.OnRenderStart(ctx, []string{"png"})
	p.OnRenderComplete(ctx, []string{"png"}, time.Second, nil)
}

type testPipelineHooks struct {
	NoopPipelineHooks
	loads int
}

func (h *testPipelineHooks) OnLoadStart(context.Context, string) { h.loads++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Pipeline().OnLoadStart(context.Background(), "x")
	if custom.loads != 1 {
		t.Errorf("loads = %d, want 1", custom.loads)
	}

	// Nil registration keeps the previous hooks.
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be a no-op")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore noop hooks")
	}
}
