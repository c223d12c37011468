package siteconfig

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when LocaleInfo.Lang is empty.
const DefaultLang = "en"

// HTMLLang returns the html lang attribute, falling back to DefaultLang.
func (l LocaleInfo) HTMLLang() string {
	if lang := strings.TrimSpace(l.Lang); lang != "" {
		return lang
	}
	return DefaultLang
}

// ResolveTags returns the configured tags, or env when none are configured.
// An empty LangTag means "use the environment default".
func (l LocaleInfo) ResolveTags(env []string) []string {
	if len(l.LangTag) == 0 {
		return append([]string(nil), env...)
	}
	return append([]string(nil), l.LangTag...)
}

// LanguageTags parses LangTag on a best-effort basis. Malformed entries are
// skipped; an empty LangTag yields nil.
func (l LocaleInfo) LanguageTags() []language.Tag {
	var tags []language.Tag
	for _, s := range l.LangTag {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		t, err := language.Parse(s)
		if err != nil {
			// Well-formed but unknown subtags (en-EN) still carry the base.
			if _, ok := err.(language.ValueError); !ok {
				continue
			}
			base, _ := t.Base()
			t = language.Make(base.String())
		}
		tags = append(tags, t)
	}
	return tags
}

// Match picks the configured tag that best serves the client preferences
// (Accept-Language values). Without configured tags it returns HTMLLang.
func (l LocaleInfo) Match(preferred ...string) language.Tag {
	supported := l.LanguageTags()
	if len(supported) == 0 {
		return language.Make(l.HTMLLang())
	}
	var want []language.Tag
	for _, p := range preferred {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		want = append(want, tags...)
	}
	_, idx, _ := language.NewMatcher(supported).Match(want...)
	return supported[idx]
}
