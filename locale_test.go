package siteconfig

import "testing"

func TestHTMLLang(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "en"},
		{"ar", "ar"},
		{"", "en"},
		{"   ", "en"},
	}
	for _, tt := range tests {
		if got := (LocaleInfo{Lang: tt.lang}).HTMLLang(); got != tt.want {
			t.Errorf("HTMLLang(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestResolveTags(t *testing.T) {
	env := []string{"ar-EG"}

	if got := (LocaleInfo{LangTag: []string{"en-US"}}).ResolveTags(env); len(got) != 1 || got[0] != "en-US" {
		t.Errorf("configured tags should win, got %v", got)
	}
	if got := (LocaleInfo{LangTag: []string{}}).ResolveTags(env); len(got) != 1 || got[0] != "ar-EG" {
		t.Errorf("empty tags should use environment default, got %v", got)
	}
	if got := (LocaleInfo{}).ResolveTags(nil); len(got) != 0 {
		t.Errorf("no tags anywhere should stay empty, got %v", got)
	}
}

func TestResolveTagsReturnsCopy(t *testing.T) {
	loc := LocaleInfo{LangTag: []string{"en-US"}}
	got := loc.ResolveTags(nil)
	got[0] = "fr-FR"
	if loc.LangTag[0] != "en-US" {
		t.Fatalf("ResolveTags leaked its backing array")
	}
}

func TestLanguageTags(t *testing.T) {
	if tags := (LocaleInfo{}).LanguageTags(); tags != nil {
		t.Errorf("empty LangTag should yield nil, got %v", tags)
	}

	tags := (LocaleInfo{LangTag: []string{"en-US", "", "de-DE"}}).LanguageTags()
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}
	if tags[0].String() != "en-US" {
		t.Errorf("tags[0] = %v, want en-US", tags[0])
	}
	if tags[1].String() != "de-DE" {
		t.Errorf("tags[1] = %v, want de-DE", tags[1])
	}
}

func TestLanguageTagsUnknownRegionKeepsBase(t *testing.T) {
	tags := (LocaleInfo{LangTag: []string{"en-EN"}}).LanguageTags()
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
	if base, _ := tags[0].Base(); base.String() != "en" {
		t.Errorf("base = %v, want en", base)
	}
}

func TestMatch(t *testing.T) {
	loc := LocaleInfo{Lang: "en", LangTag: []string{"en-US", "de-DE"}}

	if got := loc.Match("de-CH,de;q=0.9"); got.String() != "de-DE" {
		t.Errorf("Match(de-CH) = %v, want de-DE", got)
	}
	if got := loc.Match(); got.String() != "en-US" {
		t.Errorf("Match() = %v, want first configured tag", got)
	}
	if got := (LocaleInfo{}).Match("fr"); got.String() != "en" {
		t.Errorf("Match without tags = %v, want en", got)
	}
}
