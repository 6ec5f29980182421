// Package content loads the static copy and link configuration of the site.
//
// The default document is embedded in the binary. A YAML file on disk with the
// same shape can replace it (TRENCH_WEB_CONTENT / --content).
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultDocument []byte

// ErrInvalidContent is wrapped by every validation failure.
var ErrInvalidContent = errors.New("content: invalid site document")

// Status is the progress state of a roadmap milestone.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusUpcoming  Status = "upcoming"
)

// Valid reports whether s is one of the known milestone states.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusCurrent, StatusUpcoming:
		return true
	default:
		return false
	}
}

// Site is the whole content document.
type Site struct {
	Brand    Brand      `yaml:"brand"`
	Links    Links      `yaml:"links"`
	Nav      []NavEntry `yaml:"nav"`
	Hero     Hero       `yaml:"hero"`
	Features Features   `yaml:"features"`
	Roadmap  Roadmap    `yaml:"roadmap"`
	Footer   Footer     `yaml:"footer"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Logo    string `yaml:"logo"`
	LogoAlt string `yaml:"logo_alt"`
	Tagline string `yaml:"tagline"`
}

// Links holds every outbound destination. All of them open in a new browsing context.
type Links struct {
	Bot       string `yaml:"bot"`
	Community string `yaml:"community"`
	Twitter   string `yaml:"twitter"`
	Discord   string `yaml:"discord"`
}

// NavEntry is one (label, target-anchor, icon) triple.
type NavEntry struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
	Icon   string `yaml:"icon"`
}

type Hero struct {
	Accent   string `yaml:"accent"`
	Headline string `yaml:"headline"`
	Body     string `yaml:"body"` // markdown
	CTA      string `yaml:"cta"`
	NavCTA   string `yaml:"nav_cta"`

	bodyHTML template.HTML
}

// BodyHTML returns the sanitized rendering of Body.
func (h Hero) BodyHTML() template.HTML { return h.bodyHTML }

type Features struct {
	Title string    `yaml:"title"`
	Items []Feature `yaml:"items"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Roadmap struct {
	Title      string      `yaml:"title"`
	Milestones []Milestone `yaml:"milestones"`
}

type Milestone struct {
	Phase  string   `yaml:"phase"`
	Title  string   `yaml:"title"`
	Items  []string `yaml:"items"`
	Status Status   `yaml:"status"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
}

// Default parses the embedded site document.
func Default() (*Site, error) {
	return Parse(defaultDocument)
}

// Load reads the site document at path, or the embedded one when path is empty.
func Load(path string) (*Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	site, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes, validates and renders a site document.
func Parse(raw []byte) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	body, err := RenderMarkdown(site.Hero.Body)
	if err != nil {
		return nil, fmt.Errorf("content: hero body: %w", err)
	}
	site.Hero.bodyHTML = body
	return &site, nil
}

// MustDefault is Default for tests and static initialisation.
func MustDefault() *Site {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}
