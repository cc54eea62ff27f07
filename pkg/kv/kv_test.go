package kv

import "testing"

func TestSQLiteGetSet(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set("vocab", `[{"word":"猫"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("vocab")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != `[{"word":"猫"}]` {
		t.Fatalf("unexpected value %q", v)
	}

	// Overwrite
	if err := s.Set("vocab", "[]"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.Get("vocab")
	if v != "[]" {
		t.Fatalf("expected overwritten value, got %q", v)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("expected empty store")
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, _ := s.Get("k")
	if !ok || v != "v" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
}
