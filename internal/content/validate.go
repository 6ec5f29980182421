package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"trenchsniffer.io/web/internal/icons"
)

// Validate checks the document invariants. All problems are reported at once.
func Validate(s *Site) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(s.Brand.Name) == "" {
		add("brand.name is required")
	}
	if !strings.HasPrefix(s.Brand.Logo, "/") {
		add("brand.logo must be an absolute path, got %q", s.Brand.Logo)
	}

	for field, link := range map[string]string{
		"links.bot":       s.Links.Bot,
		"links.community": s.Links.Community,
		"links.twitter":   s.Links.Twitter,
		"links.discord":   s.Links.Discord,
	} {
		if !isAbsoluteHTTP(link) {
			add("%s must be an absolute http(s) URL, got %q", field, link)
		}
	}

	if len(s.Nav) == 0 {
		add("nav must list at least one entry")
	}
	for i, n := range s.Nav {
		if strings.TrimSpace(n.Label) == "" {
			add("nav[%d].label is required", i)
		}
		if len(n.Anchor) < 2 || n.Anchor[0] != '#' {
			add("nav[%d].anchor must be a fragment like #section, got %q", i, n.Anchor)
		}
		if !icons.Has(n.Icon) {
			add("nav[%d].icon %q is not a known icon", i, n.Icon)
		}
	}

	if len(s.Features.Items) == 0 {
		add("features.items must list at least one feature")
	}
	for i, f := range s.Features.Items {
		if strings.TrimSpace(f.Title) == "" {
			add("features.items[%d].title is required", i)
		}
		if !icons.Has(f.Icon) {
			add("features.items[%d].icon %q is not a known icon", i, f.Icon)
		}
	}

	if len(s.Roadmap.Milestones) == 0 {
		add("roadmap.milestones must list at least one milestone")
	}
	for i, m := range s.Roadmap.Milestones {
		if strings.TrimSpace(m.Phase) == "" {
			add("roadmap.milestones[%d].phase is required", i)
		}
		if !m.Status.Valid() {
			add("roadmap.milestones[%d].status %q must be completed, current or upcoming", i, m.Status)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
