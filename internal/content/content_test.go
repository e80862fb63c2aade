package content

import (
	"PaperPath/internal/entity"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-playground/validator/v10"
)

func mustLoad(t *testing.T) ITable {
	t.Helper()
	tbl, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	return tbl
}

func TestResolveKnownLanguages(t *testing.T) {
	tbl := mustLoad(t)

	en := tbl.Resolve("en")
	if en.Language != entity.LanguageEnglish {
		t.Fatalf("expected english bundle, got %q", en.Language)
	}
	if en.Home.Welcome != "Welcome to PaperPath" {
		t.Errorf("unexpected english welcome: %q", en.Home.Welcome)
	}

	fr := tbl.Resolve("fr")
	if fr.Home.Welcome != "Bienvenue sur PaperPath" {
		t.Errorf("unexpected french welcome: %q", fr.Home.Welcome)
	}
}

func TestResolveFallsBackToFrench(t *testing.T) {
	tbl := mustLoad(t)

	for _, code := range []string{"", "de", "ar", "xx", "EN", "en-US", "fr ", "zz-ZZ", "🇫🇷"} {
		b := tbl.Resolve(code)
		if b.Language != entity.LanguageFrench {
			t.Errorf("Resolve(%q) returned %q, expected the french bundle", code, b.Language)
		}
		if len(b.Documents.Documents) == 0 {
			t.Errorf("Resolve(%q) returned a bundle without documents", code)
		}
	}
}

func TestBundlesAreStructurallyParallel(t *testing.T) {
	tbl := mustLoad(t)
	fr := tbl.Resolve("fr")
	en := tbl.Resolve("en")

	if len(fr.Documents.Documents) != len(en.Documents.Documents) {
		t.Fatalf("document count differs: fr=%d en=%d", len(fr.Documents.Documents), len(en.Documents.Documents))
	}
	for i := range fr.Documents.Documents {
		if fr.Documents.Documents[i].Category != en.Documents.Documents[i].Category {
			t.Errorf("document %d category differs between fr and en", i)
		}
	}
	if len(fr.Services.Offices) != len(en.Services.Offices) {
		t.Fatalf("office count differs: fr=%d en=%d", len(fr.Services.Offices), len(en.Services.Offices))
	}
	if len(fr.Audio.Guides) != 3 || len(en.Audio.Guides) != 3 {
		t.Errorf("expected three audio guides per bundle")
	}
}

func TestHasAndLanguages(t *testing.T) {
	tbl := mustLoad(t)

	if !tbl.Has("fr") || !tbl.Has("en") {
		t.Fatal("expected fr and en bundles")
	}
	if tbl.Has("ar") {
		t.Error("ar has no bundle of its own")
	}

	langs := tbl.Languages()
	if len(langs) != len(entity.Languages) {
		t.Fatalf("expected %d languages, got %d", len(entity.Languages), len(langs))
	}
	if langs[0].Code != entity.LanguageFrench || !langs[0].HasBundle {
		t.Errorf("expected french first with a bundle, got %+v", langs[0])
	}
	if langs[2].Code != entity.LanguageArabic || langs[2].HasBundle {
		t.Errorf("expected arabic third without a bundle, got %+v", langs[2])
	}
}

func TestNegotiate(t *testing.T) {
	tbl := mustLoad(t)

	cases := []struct {
		header string
		want   entity.LanguageCode
	}{
		{"", entity.LanguageFrench},
		{"en-US,en;q=0.9", entity.LanguageEnglish},
		{"en-GB", entity.LanguageEnglish},
		{"fr-CA,fr;q=0.8", entity.LanguageFrench},
		{"de-DE", entity.LanguageFrench},
		{"not a header;;", entity.LanguageFrench},
	}

	for _, tc := range cases {
		if got := tbl.Negotiate(tc.header); got != tc.want {
			t.Errorf("Negotiate(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestLoadRejectsIncompleteBundle(t *testing.T) {
	fr, err := embeddedBundles.ReadFile("bundles/fr.yaml")
	if err != nil {
		t.Fatalf("read fr bundle: %v", err)
	}
	en, err := embeddedBundles.ReadFile("bundles/en.yaml")
	if err != nil {
		t.Fatalf("read en bundle: %v", err)
	}

	broken := strings.Replace(string(en), "  empty: No documents found for your search.\n", "", 1)
	if broken == string(en) {
		t.Fatal("test fixture did not remove the field")
	}

	fsys := fstest.MapFS{
		"bundles/fr.yaml": {Data: fr},
		"bundles/en.yaml": {Data: []byte(broken)},
	}

	_, err = LoadFromFS(fsys, validator.New())
	if err == nil {
		t.Fatal("expected an error for an incomplete bundle")
	}
	if !strings.Contains(err.Error(), "bundles/en.yaml") {
		t.Errorf("expected the error to name the bundle, got %v", err)
	}
}

func TestLoadRequiresDefaultBundle(t *testing.T) {
	en, err := embeddedBundles.ReadFile("bundles/en.yaml")
	if err != nil {
		t.Fatalf("read en bundle: %v", err)
	}

	_, err = LoadFromFS(fstest.MapFS{"bundles/en.yaml": {Data: en}}, validator.New())
	if err == nil {
		t.Fatal("expected an error without the french bundle")
	}
}

func TestLoadRejectsMismatchedLanguage(t *testing.T) {
	fr, err := embeddedBundles.ReadFile("bundles/fr.yaml")
	if err != nil {
		t.Fatalf("read fr bundle: %v", err)
	}

	fsys := fstest.MapFS{
		"bundles/fr.yaml": {Data: fr},
		"bundles/de.yaml": {Data: fr},
	}
	if _, err := LoadFromFS(fsys, validator.New()); err == nil {
		t.Fatal("expected an error for a bundle declaring another language")
	}
}
