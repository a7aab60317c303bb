package formconfig

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_NilFuncAdaptersAreUnset(t *testing.T) {
	cfg := validConfig()
	cfg.Hooks = Hooks{
		Transform: TransformFunc(nil),
		Success:   SuccessFunc(nil),
		Error:     ErrorFunc(nil),
	}

	eff, err := Merge(cfg)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	ctx := context.Background()
	in := Values{"name": "Ada"}
	out, err := eff.Hooks.Transform.Transform(ctx, in, url.Values{})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	eff.Hooks.Success.OnSuccess(ctx)
	eff.Hooks.Error.OnError(ctx, nil)
}

func TestMerge_KeepsFuncAdapters(t *testing.T) {
	called := false
	cfg := validConfig()
	cfg.Hooks.Success = SuccessFunc(func(context.Context) { called = true })

	eff, err := Merge(cfg)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	eff.Hooks.Success.OnSuccess(context.Background())
	if !called {
		t.Fatalf("success hook not kept")
	}
}
