package siteconfig

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OGImageURL returns the absolute URL of the social preview image, or ""
// when none is configured.
func (s SiteInfo) OGImageURL() string {
	if s.OGImage == "" {
		return ""
	}
	if u, err := url.Parse(s.OGImage); err == nil && u.IsAbs() {
		return s.OGImage
	}
	return strings.TrimSuffix(BuildURL(s.Website, s.OGImage), "/")
}

// ScheduledPostMarginDuration returns the scheduled post margin as a duration.
func (s SiteInfo) ScheduledPostMarginDuration() time.Duration {
	return time.Duration(s.ScheduledPostMargin) * time.Millisecond
}

// IsPublished reports whether a post is visible at now. Drafts never are;
// scheduled posts become visible once now is within the margin of pubDate.
func (s SiteInfo) IsPublished(draft bool, pubDate, now time.Time) bool {
	if draft {
		return false
	}
	return now.After(pubDate.Add(-s.ScheduledPostMarginDuration()))
}

// IndexCount returns how many of total posts the landing index shows.
func (s SiteInfo) IndexCount(total int) int {
	if total <= 0 || s.PostPerIndex <= 0 {
		return 0
	}
	return min(total, s.PostPerIndex)
}

// PageCount returns the number of list pages for total posts. There is
// always at least one page.
func (s SiteInfo) PageCount(total int) int {
	if total <= 0 || s.PostPerPage <= 0 {
		return 1
	}
	return (total + s.PostPerPage - 1) / s.PostPerPage
}

// PageBounds returns the [start, end) slice bounds of the 1-based page.
func (s SiteInfo) PageBounds(page, total int) (start, end int, ok bool) {
	if page < 1 || page > s.PageCount(total) || s.PostPerPage <= 0 {
		return 0, 0, false
	}
	start = (page - 1) * s.PostPerPage
	end = min(start+s.PostPerPage, max(total, 0))
	return start, end, true
}

// ActiveSocials filters out inactive links, keeping display order.
func ActiveSocials(links []SocialLink) []SocialLink {
	var out []SocialLink
	for _, l := range links {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}

// WebsiteJSONLD returns a Schema.org WebSite JSON-LD string. Active web
// social links become the author's sameAs list.
func (c Config) WebsiteJSONLD() string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        c.Site.Title,
		"url":         c.Site.Website,
		"description": c.Site.Desc,
		"inLanguage":  c.Locale.HTMLLang(),
	}
	if img := c.Site.OGImageURL(); img != "" {
		data["image"] = img
	}
	if c.Site.Author != "" {
		author := map[string]interface{}{
			"@type": "Person",
			"name":  c.Site.Author,
		}
		if c.Site.Profile != "" {
			author["url"] = c.Site.Profile
		}
		var sameAs []string
		for _, l := range ActiveSocials(c.Socials) {
			if strings.HasPrefix(l.Href, "https://") || strings.HasPrefix(l.Href, "http://") {
				sameAs = append(sameAs, l.Href)
			}
		}
		if len(sameAs) > 0 {
			author["sameAs"] = sameAs
		}
		data["author"] = author
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
