package policy

import "testing"

func TestLoadIndustryPacks(t *testing.T) {
	layers, err := LoadIndustryPacks()
	if err != nil {
		t.Fatalf("LoadIndustryPacks: %v", err)
	}
	if len(layers) == 0 {
		t.Fatal("no industries loaded")
	}

	roofing, ok := layers["roofing"]
	if !ok {
		t.Fatal("roofing pack missing")
	}
	if roofing.IndustryKey != "roofing" {
		t.Errorf("IndustryKey = %q, want roofing", roofing.IndustryKey)
	}
	if roofing.PromptPreamble == "" {
		t.Error("roofing pack has no prompt preamble")
	}

	for key := range layers {
		for _, r := range key {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("pack key %q not lowercased", key)
			}
		}
	}
}

func TestValidatePackRejectsUnknownFields(t *testing.T) {
	bad := []byte(`{"industries":[{"key":"x","label":"X","bogus":true}]}`)
	if err := validatePack(bad); err == nil {
		t.Error("expected schema violation for unknown field")
	}
}

func TestValidatePackRejectsMissingLabel(t *testing.T) {
	bad := []byte(`{"industries":[{"key":"x"}]}`)
	if err := validatePack(bad); err == nil {
		t.Error("expected schema violation for missing label")
	}
}
