package locale

import (
	"errors"
	"testing"
)

func TestBuiltinBundlesValid(t *testing.T) {
	bundles := Builtin()
	if len(bundles) != 2 {
		t.Fatalf("Builtin() returned %d bundles, want 2", len(bundles))
	}
	for _, b := range bundles {
		if err := Validate(b); err != nil {
			t.Errorf("Validate(%s) failed: %v", b.Code, err)
		}
	}
}

func TestValidateRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Bundle)
	}{
		{
			name:   "duplicate entry id",
			mutate: func(b *Bundle) { b.LastNames[1].ID = b.LastNames[0].ID },
		},
		{
			name:   "descending entry id",
			mutate: func(b *Bundle) { b.LastNames[1].ID = b.LastNames[0].ID - 1 },
		},
		{
			name:   "zero frequency",
			mutate: func(b *Bundle) { b.EyeColors[0].Frequency = 0 },
		},
		{
			name:   "negative frequency",
			mutate: func(b *Bundle) { b.StreetNames[0].Frequency = -3 },
		},
		{
			name: "no female first names",
			mutate: func(b *Bundle) {
				var males []Entry
				for _, e := range b.FirstNames {
					if e.Gender == GenderMale {
						males = append(males, e)
					}
				}
				b.FirstNames = males
			},
		},
		{
			name:   "bad gender tag",
			mutate: func(b *Bundle) { b.FirstNames[0].Gender = "X" },
		},
		{
			name:   "gender tag on ungendered list",
			mutate: func(b *Bundle) { b.LastNames[0].Gender = GenderMale },
		},
		{
			name:   "empty list",
			mutate: func(b *Bundle) { b.PhoneFormats = nil },
		},
		{
			name:   "postal pattern with unknown character",
			mutate: func(b *Bundle) { b.Cities[0].PostalPattern = "##?##" },
		},
		{
			name:   "postal pattern without placeholders",
			mutate: func(b *Bundle) { b.Cities[0].PostalPattern = "ABCDE" },
		},
		{
			name:   "phone format without placeholders",
			mutate: func(b *Bundle) { b.PhoneFormats[0].Text = "555-0100" },
		},
		{
			name:   "city without region",
			mutate: func(b *Bundle) { b.Cities[0].Region = "" },
		},
		{
			name:   "bad email domain",
			mutate: func(b *Bundle) { b.EmailDomains[0].Text = "Not A Domain" },
		},
		{
			name:   "empty display name",
			mutate: func(b *Bundle) { b.Name = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builtinEnUS()
			tt.mutate(b)
			err := Validate(b)
			if err == nil {
				t.Fatal("Validate() accepted a corrupted bundle")
			}
			if !errors.Is(err, ErrInvalidDataset) {
				t.Errorf("Validate() error = %v, want ErrInvalidDataset", err)
			}
		})
	}
}

func TestFirstNamesForFilters(t *testing.T) {
	b := builtinEnUS()

	males := b.FirstNamesFor(GenderMale)
	if len(males) == 0 {
		t.Fatal("no male first names")
	}
	prev := -1
	for _, e := range males {
		if e.Gender != GenderMale && e.Gender != GenderUnisex {
			t.Errorf("male filter returned gender %q", e.Gender)
		}
		if e.ID <= prev {
			t.Errorf("filtered ids not ascending: %d after %d", e.ID, prev)
		}
		prev = e.ID
	}

	females := b.FirstNamesFor(GenderFemale)
	if len(males)+len(females) != len(b.FirstNames) {
		t.Errorf("male (%d) + female (%d) filters should cover all %d entries",
			len(males), len(females), len(b.FirstNames))
	}
}

func TestTitlesForIncludesUnisex(t *testing.T) {
	b := builtinEnUS()
	for _, g := range []string{GenderMale, GenderFemale} {
		found := false
		for _, e := range b.TitlesFor(g) {
			if e.Gender == GenderUnisex {
				found = true
			}
		}
		if !found {
			t.Errorf("TitlesFor(%s) should include unisex titles", g)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	s, err := NewMemoryStore(Builtin()...)
	if err != nil {
		t.Fatalf("NewMemoryStore() failed: %v", err)
	}

	b, err := s.Bundle("en_US")
	if err != nil {
		t.Fatalf("Bundle(en_US) failed: %v", err)
	}
	if b.Code != "en_US" {
		t.Errorf("Bundle(en_US).Code = %s", b.Code)
	}

	_, err = s.Bundle("fr_FR")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Bundle(fr_FR) error = %v, want ErrNotFound", err)
	}

	if err := s.Ping(); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}
}

func TestMemoryStoreLocalesSorted(t *testing.T) {
	s, err := NewMemoryStore(Builtin()...)
	if err != nil {
		t.Fatalf("NewMemoryStore() failed: %v", err)
	}
	infos, err := s.Locales()
	if err != nil {
		t.Fatalf("Locales() failed: %v", err)
	}
	if len(infos) != 2 || infos[0].Code != "de_DE" || infos[1].Code != "en_US" {
		t.Errorf("Locales() = %+v, want de_DE then en_US", infos)
	}
}

func TestMemoryStoreRejectsInvalidBundle(t *testing.T) {
	b := builtinEnUS()
	b.LastNames[0].Frequency = 0
	if _, err := NewMemoryStore(b); !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("NewMemoryStore() error = %v, want ErrInvalidDataset", err)
	}
}

func TestOpenSelectsStoreKind(t *testing.T) {
	for _, kind := range []string{"", "builtin"} {
		s, err := Open(kind, "")
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", kind, err)
		}
		if _, err := s.Bundle("de_DE"); err != nil {
			t.Errorf("Open(%q) store missing de_DE: %v", kind, err)
		}
		s.Close()
	}

	if _, err := Open("redis", ""); err == nil {
		t.Error("Open(redis) should fail")
	}
}
