package query

import "testing"

func TestClampNegativeDepths(t *testing.T) {
	opts := Options{SwapOrderDepth: -3, ComplementDepth: -1}
	opts.Clamp()
	if opts.SwapOrderDepth != 0 || opts.ComplementDepth != 0 {
		t.Errorf("expected negative depths clamped to 0, got %+v", opts)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.SwapOrderDepth != 2 || opts.ComplementDepth != 2 {
		t.Errorf("expected default depths of 2, got %+v", opts)
	}
	if opts.Mode != PrimaryMode {
		t.Errorf("expected default mode Primary, got %v", opts.Mode)
	}
}
