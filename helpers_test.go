package siteconfig

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://bakrblog.netlify.app/", nil, "https://bakrblog.netlify.app/"},
		{"https://bakrblog.netlify.app/", []string{"posts", "hello"}, "https://bakrblog.netlify.app/posts/hello/"},
		{"https://example.com/blog", []string{"tags"}, "https://example.com/blog/tags/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestOGImageURL(t *testing.T) {
	site := Default().Site
	if got := site.OGImageURL(); got != "https://bakrblog.netlify.app/astropaper-og.jpg" {
		t.Errorf("OGImageURL() = %q", got)
	}

	site.OGImage = "https://cdn.example.com/og.png"
	if got := site.OGImageURL(); got != "https://cdn.example.com/og.png" {
		t.Errorf("absolute OGImage should pass through, got %q", got)
	}

	site.OGImage = ""
	if got := site.OGImageURL(); got != "" {
		t.Errorf("empty OGImage should yield empty URL, got %q", got)
	}
}

func TestScheduledPostMarginDuration(t *testing.T) {
	if got := Default().Site.ScheduledPostMarginDuration(); got != 15*time.Minute {
		t.Errorf("ScheduledPostMarginDuration() = %v, want 15m", got)
	}
}

func TestIsPublished(t *testing.T) {
	site := Default().Site
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		draft bool
		pub   time.Time
		want  bool
	}{
		{"past post", false, now.Add(-time.Hour), true},
		{"inside margin", false, now.Add(10 * time.Minute), true},
		{"exactly at margin", false, now.Add(15 * time.Minute), false},
		{"beyond margin", false, now.Add(time.Hour), false},
		{"draft", true, now.Add(-time.Hour), false},
	}
	for _, tt := range tests {
		if got := site.IsPublished(tt.draft, tt.pub, now); got != tt.want {
			t.Errorf("%s: IsPublished = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPagination(t *testing.T) {
	site := Default().Site // 4 per index, 3 per page

	if got := site.IndexCount(10); got != 4 {
		t.Errorf("IndexCount(10) = %d, want 4", got)
	}
	if got := site.IndexCount(2); got != 2 {
		t.Errorf("IndexCount(2) = %d, want 2", got)
	}

	counts := map[int]int{0: 1, 1: 1, 3: 1, 4: 2, 7: 3}
	for total, want := range counts {
		if got := site.PageCount(total); got != want {
			t.Errorf("PageCount(%d) = %d, want %d", total, got, want)
		}
	}

	start, end, ok := site.PageBounds(3, 7)
	if !ok || start != 6 || end != 7 {
		t.Errorf("PageBounds(3, 7) = %d, %d, %v; want 6, 7, true", start, end, ok)
	}
	start, end, ok = site.PageBounds(1, 0)
	if !ok || start != 0 || end != 0 {
		t.Errorf("PageBounds(1, 0) = %d, %d, %v; want 0, 0, true", start, end, ok)
	}
	if _, _, ok := site.PageBounds(4, 7); ok {
		t.Error("PageBounds past the last page should fail")
	}
	if _, _, ok := site.PageBounds(0, 7); ok {
		t.Error("PageBounds(0) should fail")
	}
}

func TestWebsiteJSONLD(t *testing.T) {
	cfg := MustBuild(Default()).Config()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(cfg.WebsiteJSONLD()), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if data["@type"] != "WebSite" || data["name"] != "BakrBlog" {
		t.Errorf("unexpected WebSite fields: %v", data)
	}
	if data["inLanguage"] != "en" {
		t.Errorf("inLanguage = %v, want en", data["inLanguage"])
	}
	author, ok := data["author"].(map[string]interface{})
	if !ok {
		t.Fatalf("author missing: %v", data)
	}
	sameAs, _ := author["sameAs"].([]interface{})
	if len(sameAs) != 2 {
		t.Fatalf("sameAs = %v, want the two active web links", sameAs)
	}
	if sameAs[0] != "https://github.com/MahmoudBakr23" || sameAs[1] != "https://www.linkedin.com/in/m-bakr/" {
		t.Errorf("sameAs = %v", sameAs)
	}
}
