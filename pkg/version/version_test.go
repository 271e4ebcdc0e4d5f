package version

import "testing"

func TestVersionIsTrimmed(t *testing.T) {
	v := Version()
	if v == "" {
		t.Fatal("expected a version")
	}
	if v != "0.3.0" {
		t.Fatalf("version mismatch: got=%q", v)
	}
}
