// Package siteconfig is the configuration table of a personal blog: site
// metadata, locale settings, logo options and social links.
//
// A Table is built once at startup from a Source, validated, and then only
// read. The rendering layer receives the Table (or the Config it returns)
// explicitly instead of importing package-level state.
package siteconfig

import (
	"fmt"
	"strings"
)

// TitleToken is replaced by SiteInfo.Title in every social title template.
const TitleToken = "{title}"

// ScheduledPostMarginDefault is 15 minutes in milliseconds.
const ScheduledPostMarginDefault int64 = 15 * 60 * 1000

// Table is a validated, read-only configuration. Safe for concurrent reads.
type Table struct {
	cfg Config
}

// Default returns the compiled-in blog configuration. The contact values are
// examples; replace them when reusing the module for another site. The Github
// title keeps the leading space of the published site data.
func Default() Source {
	return Source{
		Site: SiteInfo{
			Website:             "https://bakrblog.netlify.app/",
			Author:              "Mahmoud Bakr",
			Profile:             "https://www.linkedin.com/in/m-bakr/",
			Desc:                "A place where Bakr's tech articles live at.",
			Title:               "BakrBlog",
			OGImage:             "astropaper-og.jpg",
			LightAndDarkMode:    true,
			PostPerIndex:        4,
			PostPerPage:         3,
			ScheduledPostMargin: ScheduledPostMarginDefault,
		},
		Locale: LocaleInfo{
			Lang:    "en",
			LangTag: []string{"en-EN"},
		},
		Logo: LogoConfig{
			Enable: true,
			SVG:    false,
			Width:  216,
			Height: 46,
		},
		Socials: []SocialTemplate{
			{Name: "Github", Href: "https://github.com/MahmoudBakr23", TitleTemplate: " " + OnPlatform("Github"), Active: true},
			{Name: "LinkedIn", Href: "https://www.linkedin.com/in/m-bakr/", TitleTemplate: OnPlatform("LinkedIn"), Active: true},
			{Name: "Mail", Href: "mailto:mbakr6821@gmail.com", TitleTemplate: SendEmailTo(), Active: false},
			{Name: "WhatsApp", Href: "https://wa.me/201146467077", TitleTemplate: OnPlatform("WhatsApp"), Active: false},
		},
	}
}

// FormatLinkTitle substitutes siteTitle for every TitleToken in template.
func FormatLinkTitle(template, siteTitle string) string {
	return strings.ReplaceAll(template, TitleToken, siteTitle)
}

// OnPlatform returns the "<title> on <platform>" template.
func OnPlatform(platform string) string {
	return TitleToken + " on " + platform
}

// SendEmailTo returns the "Send an email to <title>" template.
func SendEmailTo() string {
	return "Send an email to " + TitleToken
}

// Derive expands src into a Config without validating it.
func Derive(src Source) Config {
	cfg := Config{
		Site:   src.Site,
		Locale: src.Locale,
		Logo:   src.Logo,
	}
	if src.Socials != nil {
		cfg.Socials = make([]SocialLink, 0, len(src.Socials))
	}
	for _, s := range src.Socials {
		cfg.Socials = append(cfg.Socials, SocialLink{
			Name:      s.Name,
			Href:      s.Href,
			LinkTitle: FormatLinkTitle(s.TitleTemplate, src.Site.Title),
			Active:    s.Active,
		})
	}
	return cfg.clone()
}

// Build derives the link titles from src, validates the result and freezes
// it into a Table.
func Build(src Source) (*Table, error) {
	return NewTable(Derive(src))
}

// NewTable validates an already derived Config and freezes a copy of it.
func NewTable(cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("siteconfig: invalid configuration: %w", err)
	}
	return &Table{cfg: cfg.clone()}, nil
}

// MustBuild is like Build but panics on error. Intended for startup code.
func MustBuild(src Source) *Table {
	t, err := Build(src)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns a copy of the full configuration.
func (t *Table) Config() Config {
	return t.cfg.clone()
}

func (t *Table) Site() SiteInfo {
	return t.cfg.Site
}

func (t *Table) Locale() LocaleInfo {
	return t.cfg.clone().Locale
}

func (t *Table) Logo() LogoConfig {
	return t.cfg.Logo
}

// Socials returns the social links in display order, inactive ones included.
func (t *Table) Socials() []SocialLink {
	return t.cfg.clone().Socials
}
