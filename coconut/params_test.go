package coconut

import (
	"testing"
)

func TestSetupValidatesQ(t *testing.T) {
	if _, err := Setup(0); err == nil {
		t.Fatal("expected error for q=0")
	}
	if _, err := Setup(-1); err == nil {
		t.Fatal("expected error for negative q")
	}
}

func TestSetupDeterministicBases(t *testing.T) {
	p1, err := Setup(5)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	p2, err := Setup(5)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	for i := range p1.Hs {
		b1, b2 := p1.Hs[i].Bytes(), p2.Hs[i].Bytes()
		if b1 != b2 {
			t.Fatalf("hs[%d] differs across Setup calls", i)
		}
	}
}

// TestMessageBaseDeterminism checks that two
// independently prepared requests with the same cm yield bit-identical h.
func TestMessageBaseDeterminism(t *testing.T) {
	params, err := Setup(3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	r, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	cm := scalarMulG1(params.G1, r)

	h1, err := params.MessageBase(cm)
	if err != nil {
		t.Fatalf("MessageBase: %v", err)
	}
	h2, err := params.MessageBase(cm)
	if err != nil {
		t.Fatalf("MessageBase: %v", err)
	}
	if h1.Bytes() != h2.Bytes() {
		t.Fatal("MessageBase is not deterministic in cm")
	}
}
