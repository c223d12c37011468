package siteconfig

// SiteInfo carries the site-wide metadata every page template reads.
type SiteInfo struct {
	Website          string `json:"website" yaml:"website"` // canonical deployment origin
	Author           string `json:"author" yaml:"author"`
	Profile          string `json:"profile" yaml:"profile"` // author's external profile
	Desc             string `json:"desc" yaml:"desc"`
	Title            string `json:"title" yaml:"title"` // substituted into social link titles
	OGImage          string `json:"ogImage" yaml:"ogImage"`
	LightAndDarkMode bool   `json:"lightAndDarkMode" yaml:"lightAndDarkMode"`
	PostPerIndex     int    `json:"postPerIndex" yaml:"postPerIndex"`
	PostPerPage      int    `json:"postPerPage" yaml:"postPerPage"`

	// ScheduledPostMargin is the grace window, in milliseconds, before a
	// future-dated post counts as published.
	ScheduledPostMargin int64 `json:"scheduledPostMargin" yaml:"scheduledPostMargin"`
}

// LocaleInfo holds the html lang code and the BCP 47 tags used for date
// formatting. Empty values are sentinels, see HTMLLang and ResolveTags.
type LocaleInfo struct {
	Lang    string   `json:"lang" yaml:"lang"`
	LangTag []string `json:"langTag" yaml:"langTag"`
}

// LogoConfig controls how the header logo is displayed.
type LogoConfig struct {
	Enable bool `json:"enable" yaml:"enable"`
	SVG    bool `json:"svg" yaml:"svg"`
	Width  int  `json:"width" yaml:"width"`
	Height int  `json:"height" yaml:"height"`
}

// SocialLink is one external profile or contact channel. Inactive links stay
// in the data and are filtered by the consumer.
type SocialLink struct {
	Name      string `json:"name" yaml:"name"`
	Href      string `json:"href" yaml:"href"`
	LinkTitle string `json:"linkTitle" yaml:"linkTitle"`
	Active    bool   `json:"active" yaml:"active"`
}

// SocialTemplate is the authoring form of a SocialLink. TitleTemplate holds
// the {title} token that Build replaces with SiteInfo.Title.
type SocialTemplate struct {
	Name          string `json:"name" yaml:"name"`
	Href          string `json:"href" yaml:"href"`
	TitleTemplate string `json:"titleTemplate" yaml:"titleTemplate"`
	Active        bool   `json:"active" yaml:"active"`
}

// Source is the authoring input to Build.
type Source struct {
	Site    SiteInfo         `json:"site" yaml:"site"`
	Locale  LocaleInfo       `json:"locale" yaml:"locale"`
	Logo    LogoConfig       `json:"logo" yaml:"logo"`
	Socials []SocialTemplate `json:"socials" yaml:"socials"`
}

// Config is the complete derived configuration handed to the rendering
// layer. Document keys mirror the exported bindings SITE, LOCALE,
// LOGO_IMAGE and SOCIALS.
type Config struct {
	Site    SiteInfo     `json:"SITE" yaml:"SITE"`
	Locale  LocaleInfo   `json:"LOCALE" yaml:"LOCALE"`
	Logo    LogoConfig   `json:"LOGO_IMAGE" yaml:"LOGO_IMAGE"`
	Socials []SocialLink `json:"SOCIALS" yaml:"SOCIALS"`
}

func (c Config) clone() Config {
	out := c
	if c.Locale.LangTag != nil {
		out.Locale.LangTag = append([]string(nil), c.Locale.LangTag...)
	}
	if c.Socials != nil {
		out.Socials = append([]SocialLink(nil), c.Socials...)
	}
	return out
}
