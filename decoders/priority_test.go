package decoders

import (
	"context"
	"testing"
)

type testDecoder struct {
	target   string
	priority float64
}

func (d testDecoder) Decode(ctx context.Context, text string) (string, bool) {
	return "", false
}

func (d testDecoder) Priority() float64 {
	return d.priority
}

func (d testDecoder) Target() string {
	return d.target
}

func (d testDecoder) Params() map[string]ParamSpec {
	return nil
}

func TestByPriority(t *testing.T) {
	ds := []Decoder{
		testDecoder{"low", 0.1},
		testDecoder{"high", 0.8},
		testDecoder{"mid", 0.25},
	}
	sorted := ByPriority(ds)
	if sorted[0].Target() != "high" {
		t.Fatalf("got %s", sorted[0].Target())
	}
	if sorted[1].Target() != "mid" {
		t.Fatalf("got %s", sorted[1].Target())
	}
	if sorted[2].Target() != "low" {
		t.Fatalf("got %s", sorted[2].Target())
	}
	// input untouched
	if ds[0].Target() != "low" {
		t.Fatal()
	}
}
