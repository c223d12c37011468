package siteconfig

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	errNotAbsoluteURL = errors.New("must be an absolute http(s) URL")
	errNotURI         = errors.New("must be an absolute URI")
)

// Validate runs the construction-time checks. Errors are keyed by the
// document field names.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Site),
		validation.Field(&c.Logo),
		validation.Field(&c.Socials),
	)
}

func (s SiteInfo) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Website, validation.Required, validation.By(absoluteWebURL)),
		validation.Field(&s.PostPerIndex, validation.Required, validation.Min(1)),
		validation.Field(&s.PostPerPage, validation.Required, validation.Min(1)),
		validation.Field(&s.ScheduledPostMargin, validation.Min(int64(0))),
	)
}

func (l LogoConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Width, validation.Required, validation.Min(1)),
		validation.Field(&l.Height, validation.Required, validation.Min(1)),
	)
}

func (s SocialLink) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Href, validation.Required, validation.By(absoluteURI)),
	)
}

func absoluteWebURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return errNotAbsoluteURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errNotAbsoluteURL
	}
	return nil
}

// absoluteURI accepts any scheme. mailto recipients must be addresses.
func absoluteURI(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) != s {
		return errNotURI
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return errNotURI
	}
	if strings.EqualFold(u.Scheme, "mailto") {
		return mailtoRecipients(u)
	}
	if u.Host == "" && u.Opaque == "" && u.Path == "" {
		return errNotURI
	}
	return nil
}

// mailtoRecipients checks the comma-separated addresses of a mailto URI,
// taken from the opaque part and any to= query fields.
func mailtoRecipients(u *url.URL) error {
	lists := append([]string{u.Opaque}, u.Query()["to"]...)
	n := 0
	for _, list := range lists {
		decoded, err := url.PathUnescape(list)
		if err != nil {
			return errNotURI
		}
		for _, addr := range strings.Split(decoded, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			if err := is.EmailFormat.Validate(addr); err != nil {
				return err
			}
			n++
		}
	}
	if n == 0 {
		return errNotURI
	}
	return nil
}
