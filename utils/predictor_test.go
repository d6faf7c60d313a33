package utils

import (
	"reflect"
	"testing"
)

func TestPredictVariations(t *testing.T) {
	variations, err := PredictVariations("example.com", "John", "Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"john.doe@example.com",
		"johndoe@example.com",
		"jdoe@example.com",
		"johnd@example.com",
		"doe.john@example.com",
		"doejohn@example.com",
	}
	if !reflect.DeepEqual(variations, want) {
		t.Errorf("PredictVariations = %v, want %v", variations, want)
	}
}

func TestPredictVariationsMissingName(t *testing.T) {
	if _, err := PredictVariations("example.com", "", "Doe"); err == nil {
		t.Error("expected error for empty first name")
	}
	if _, err := PredictVariations("example.com", "John", ""); err == nil {
		t.Error("expected error for empty last name")
	}
}

func TestPredictVariationsDomainVerbatim(t *testing.T) {
	variations, err := PredictVariations("Example.COM", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Names are lower-cased, the domain is not.
	if variations[0] != "ada.lovelace@Example.COM" {
		t.Errorf("first variation = %q", variations[0])
	}
}

func TestPredictVariationsMultibyteInitial(t *testing.T) {
	variations, err := PredictVariations("example.com", "Élodie", "Dupont")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The initial is the first character, not the first byte.
	if variations[2] != "édupont@example.com" {
		t.Errorf("initial variation = %q, want %q", variations[2], "édupont@example.com")
	}
	if variations[3] != "élodied@example.com" {
		t.Errorf("variation = %q, want %q", variations[3], "élodied@example.com")
	}
}

func TestPredictVariationsIdempotent(t *testing.T) {
	first, err := PredictVariations("example.com", "John", "Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PredictVariations("example.com", "John", "Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different outputs")
	}
}
