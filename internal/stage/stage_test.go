package stage

import "testing"

func TestReached(t *testing.T) {
	if !Flattened.Reached(Loaded) {
		t.Error("Flattened should have reached Loaded")
	}
	if Loaded.Reached(Flattened) {
		t.Error("Loaded should not have reached Flattened")
	}
}

func TestString(t *testing.T) {
	if Converged.String() != "converged" {
		t.Errorf("unexpected string: %s", Converged.String())
	}
}
