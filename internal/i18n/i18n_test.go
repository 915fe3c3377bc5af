package i18n

import "testing"

func TestTranslationsCoverEnglishKeys(t *testing.T) {
	for _, lang := range AvailableLanguages() {
		for key := range translations[EN] {
			if _, ok := translations[lang][key]; !ok {
				t.Errorf("%s: missing key %q", lang, key)
			}
		}
	}
}

func TestFallbacks(t *testing.T) {
	defer SetLanguage(GetLanguage())

	SetLanguage(HE)
	if got := T("no_such_key"); got != "no_such_key" {
		t.Errorf("T(unknown) = %q", got)
	}

	SetLanguage(Language("xx"))
	if got := GetLanguage(); got != HE {
		t.Errorf("unknown language accepted: %q", got)
	}
}
