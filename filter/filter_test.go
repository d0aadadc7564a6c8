package filter

import (
	"sync"
	"testing"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/persona"
)

func sampleRecord() persona.Record {
	return persona.Record{
		Position:  7,
		FullName:  "Linda Thompson",
		Address:   "4821 Oak Ave, Denver, CO 33190",
		Latitude:  39.7392,
		Longitude: -104.9903,
		HeightCm:  168,
		WeightKg:  62,
		EyeColor:  "Green",
		Phone:     "(303) 555-0188",
		Email:     "linda.thompson@example.com",
	}
}

func TestCompileSuccess(t *testing.T) {
	testCases := []struct {
		name       string
		expression string
	}{
		{"Simple boolean", `true`},
		{"Field access", `person.height_cm >= 170`},
		{"String comparison", `person.eye_color == "Brown"`},
		{"Boolean logic", `person.height_cm >= 170 && person.weight_kg < 90`},
		{"Arithmetic", `person.weight_kg * 2 > 100`},
		{"String function", `person.email.endsWith("@gmail.com")`},
		{"List membership", `person.eye_color in ["Blue", "Green"]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Compile(tc.expression)
			if err != nil {
				t.Errorf("Compile(%q) failed: %v", tc.expression, err)
			}
			if f != nil && f.Expression() != tc.expression {
				t.Errorf("Expression() = %q, want %q", f.Expression(), tc.expression)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	testCases := []struct {
		name       string
		expression string
	}{
		{"Syntax error", `person.height_cm >=`},
		{"Invalid operator", `person.height_cm === 170`},
		{"Undeclared variable", `account.balance > 0`},
		{"Mismatched parens", `(person.height_cm >= 170`},
		{"Empty expression", ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.expression)
			if err == nil {
				t.Errorf("Compile(%q) should return error", tc.expression)
			} else if err.Error() == "" {
				t.Error("Error message should be descriptive")
			}
		})
	}
}

func TestKeep(t *testing.T) {
	rec := sampleRecord()

	testCases := []struct {
		name       string
		expression string
		want       bool
	}{
		{"Height above threshold", `person.height_cm >= 160`, true},
		{"Height below threshold", `person.height_cm > 200`, false},
		{"Eye color match", `person.eye_color == "Green"`, true},
		{"Eye color mismatch", `person.eye_color == "Brown"`, false},
		{"Name prefix", `person.full_name.startsWith("Linda")`, true},
		{"Email suffix", `person.email.endsWith("@example.com")`, true},
		{"Coordinate signs", `person.latitude > 0.0 && person.longitude < 0.0`, true},
		{"Position equality", `person.position == 7`, true},
		{"Weight membership", `person.weight_kg in [60, 61, 62]`, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Compile(tc.expression)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tc.expression, err)
			}

			got, err := f.Keep(rec)
			if err != nil {
				t.Fatalf("Keep() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Keep() = %v, want %v", got, tc.want)
			}
		})
	}
}

// A predicate that yields something other than a bool keeps nothing.
func TestKeepNonBooleanExpression(t *testing.T) {
	f, err := Compile(`person.position`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	got, err := f.Keep(sampleRecord())
	if err != nil {
		t.Fatalf("Keep() failed: %v", err)
	}
	if got {
		t.Error("non-boolean expression should keep nothing")
	}
}

func TestKeepEvaluationError(t *testing.T) {
	f, err := Compile(`1 / 0 > 0`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	got, err := f.Keep(sampleRecord())
	if err == nil {
		t.Fatal("Keep() should surface evaluation errors")
	}
	if got {
		t.Error("Keep() should report false when evaluation fails")
	}
}

func TestKeepMissingField(t *testing.T) {
	f, err := Compile(`person.shoe_size > 40`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	_, err = f.Keep(sampleRecord())
	if err == nil {
		t.Fatal("Keep() should return error for unknown record field")
	}
}

func TestApply(t *testing.T) {
	records := []persona.Record{
		{Position: 0, FullName: "A", HeightCm: 155},
		{Position: 1, FullName: "B", HeightCm: 181},
		{Position: 2, FullName: "C", HeightCm: 174},
		{Position: 3, FullName: "D", HeightCm: 192},
	}

	f, err := Compile(`person.height_cm >= 175`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	kept, err := f.Apply(records)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if len(kept) != 2 {
		t.Fatalf("Apply() kept %d records, want 2", len(kept))
	}
	if kept[0].Position != 1 || kept[1].Position != 3 {
		t.Errorf("Apply() should preserve order, got positions %d, %d", kept[0].Position, kept[1].Position)
	}
}

func TestApplyNilFilter(t *testing.T) {
	records := []persona.Record{{Position: 0}, {Position: 1}}

	var f *Filter
	kept, err := f.Apply(records)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if len(kept) != len(records) {
		t.Errorf("nil filter kept %d records, want %d", len(kept), len(records))
	}
}

// Filters compose with real generated batches: a predicate matching the
// documented field ranges keeps everything, a narrower one keeps a
// matching subset.
func TestApplyGeneratedRecords(t *testing.T) {
	store, err := locale.NewMemoryStore(locale.Builtin()...)
	if err != nil {
		t.Fatalf("NewMemoryStore() failed: %v", err)
	}
	gen := persona.New(store)

	records, err := gen.Series("en_US", 12345, 0, 200)
	if err != nil {
		t.Fatalf("Series() failed: %v", err)
	}

	all, err := Compile(`person.height_cm >= 150 && person.height_cm <= 210`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	kept, err := all.Apply(records)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if len(kept) != len(records) {
		t.Errorf("range filter kept %d of %d records", len(kept), len(records))
	}

	brown, err := Compile(`person.eye_color == "Brown"`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	kept, err = brown.Apply(records)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if len(kept) == 0 || len(kept) == len(records) {
		t.Errorf("eye color filter kept %d of %d records, want a strict subset", len(kept), len(records))
	}
	for _, rec := range kept {
		if rec.EyeColor != "Brown" {
			t.Fatalf("kept record at position %d has eye color %s", rec.Position, rec.EyeColor)
		}
	}
}

func TestKeepConcurrent(t *testing.T) {
	f, err := Compile(`person.height_cm >= 160`)
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	rec := sampleRecord()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got, err := f.Keep(rec)
				if err != nil {
					t.Errorf("concurrent Keep() failed: %v", err)
				}
				if !got {
					t.Error("concurrent Keep() = false, want true")
				}
			}
		}()
	}
	wg.Wait()
}
