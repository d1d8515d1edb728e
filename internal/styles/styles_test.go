package styles

import "testing"

func TestLookupKnownKeys(t *testing.T) {
	for _, key := range []string{"corporate", "creative", "executive"} {
		def := Lookup(key)
		if def.Key != key {
			t.Fatalf("Lookup(%q).Key = %q", key, def.Key)
		}
		if def.Prompt == "" {
			t.Fatalf("Lookup(%q) has empty prompt", key)
		}
		if def.Name == "" || def.Description == "" {
			t.Fatalf("Lookup(%q) missing display metadata", key)
		}
		if def.FallbackImage == "" {
			t.Fatalf("Lookup(%q) missing fallback image", key)
		}
	}
}

func TestLookupUnknownKeyFallsBackToDefault(t *testing.T) {
	for _, key := range []string{"", "invalid", "Corporate", "casual", "corporate "} {
		def := Lookup(key)
		if def.Key != DefaultKey {
			t.Fatalf("Lookup(%q).Key = %q, want %q", key, def.Key, DefaultKey)
		}
	}
}

func TestValid(t *testing.T) {
	for _, key := range Keys() {
		if !Valid(key) {
			t.Fatalf("Valid(%q) = false", key)
		}
	}
	for _, key := range []string{"", "invalid", "EXECUTIVE", "portrait"} {
		if Valid(key) {
			t.Fatalf("Valid(%q) = true", key)
		}
	}
}

func TestAllIsStableAndClosed(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("catalog size = %d, want 3", len(all))
	}
	want := []string{"corporate", "creative", "executive"}
	for i, def := range all {
		if def.Key != want[i] {
			t.Fatalf("All()[%d].Key = %q, want %q", i, def.Key, want[i])
		}
	}

	// Mutating the returned slice must not leak into the catalog.
	all[0].Name = "mutated"
	if Lookup("corporate").Name == "mutated" {
		t.Fatalf("All() exposes internal catalog storage")
	}
}

func TestFallbackImagesAreDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, def := range All() {
		if prev, ok := seen[def.FallbackImage]; ok {
			t.Fatalf("styles %q and %q share a fallback image", prev, def.Key)
		}
		seen[def.FallbackImage] = def.Key
	}
}
