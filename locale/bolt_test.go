package locale

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "locales.db"))
	if err != nil {
		t.Fatalf("OpenBolt() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltStoreRoundTrip(t *testing.T) {
	s := openTestBolt(t)

	want := builtinEnUS()
	if err := s.SaveBundle(want); err != nil {
		t.Fatalf("SaveBundle() failed: %v", err)
	}

	got, err := s.Bundle("en_US")
	if err != nil {
		t.Fatalf("Bundle(en_US) failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("bundle changed across a bolt round trip")
	}
}

func TestBoltStoreLocalesSorted(t *testing.T) {
	s := openTestBolt(t)
	for _, b := range Builtin() {
		if err := s.SaveBundle(b); err != nil {
			t.Fatalf("SaveBundle(%s) failed: %v", b.Code, err)
		}
	}

	infos, err := s.Locales()
	if err != nil {
		t.Fatalf("Locales() failed: %v", err)
	}
	if len(infos) != 2 || infos[0].Code != "de_DE" || infos[1].Code != "en_US" {
		t.Errorf("Locales() = %+v, want de_DE then en_US", infos)
	}
}

func TestBoltStoreNotFound(t *testing.T) {
	s := openTestBolt(t)
	if _, err := s.Bundle("en_US"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Bundle on empty store error = %v, want ErrNotFound", err)
	}
}

func TestBoltStoreRejectsInvalidBundle(t *testing.T) {
	s := openTestBolt(t)
	b := builtinDeDE()
	b.Cities[0].PostalPattern = "no placeholders"
	if err := s.SaveBundle(b); !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("SaveBundle() error = %v, want ErrInvalidDataset", err)
	}
}

func TestBoltStorePing(t *testing.T) {
	s := openTestBolt(t)
	if err := s.Ping(); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}
}
