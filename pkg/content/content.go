// Package content loads the portfolio page content from YAML and renders its
// Markdown fields to HTML once, at load time.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

var ErrMissingOwner = errors.New("content: owner is required")

type Portfolio struct {
	Owner        string          `yaml:"owner"`
	Hero         Hero            `yaml:"hero"`
	About        Section         `yaml:"about"`
	Interviews   []Card          `yaml:"interviews"`
	Education    []TimelineEntry `yaml:"education"`
	Achievements []string        `yaml:"achievements"`
	Skills       Skills          `yaml:"skills"`
	Testimonials []Testimonial   `yaml:"testimonials"`
	Projects     []Card          `yaml:"projects"`
	Footer       string          `yaml:"footer"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Intro    string `yaml:"intro"`
	Links    []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Section is a heading with a Markdown body.
type Section struct {
	Heading  string        `yaml:"heading"`
	Body     string        `yaml:"body"`
	BodyHTML template.HTML `yaml:"-"`
	Links    []Link        `yaml:"links"`
}

type Card struct {
	Title           string        `yaml:"title"`
	Description     string        `yaml:"description"`
	DescriptionHTML template.HTML `yaml:"-"`
	Link            *Link         `yaml:"link,omitempty"`
}

type TimelineEntry struct {
	Period string `yaml:"period"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
	Link   *Link  `yaml:"link,omitempty"`
}

type Skills struct {
	Technical []SkillGroup `yaml:"technical"`
	Soft      string       `yaml:"soft"`
}

type SkillGroup struct {
	Label string `yaml:"label"`
	Items string `yaml:"items"`
}

type Testimonial struct {
	Quote    string `yaml:"quote"`
	Author   string `yaml:"author"`
	Role     string `yaml:"role"`
	ImageURL string `yaml:"image_url"`
}

// Initials is the placeholder shown when a testimonial has no image or it fails to load.
func (t Testimonial) Initials() string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(t.Author) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// Load parses YAML content from r and renders its Markdown fields.
func Load(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("content: failed to decode: %w", err)
	}

	if strings.TrimSpace(p.Owner) == "" {
		return nil, ErrMissingOwner
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Linkify))

	var err error
	if p.About.BodyHTML, err = render(md, p.About.Body); err != nil {
		return nil, err
	}
	for i := range p.Interviews {
		if p.Interviews[i].DescriptionHTML, err = render(md, p.Interviews[i].Description); err != nil {
			return nil, err
		}
	}
	for i := range p.Projects {
		if p.Projects[i].DescriptionHTML, err = render(md, p.Projects[i].Description); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// LoadFS reads name from fsys, e.g. the embedded web assets.
func LoadFS(fsys fs.FS, name string) (*Portfolio, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("content: failed to open %s: %w", name, err)
	}
	defer f.Close()

	return Load(f)
}

func LoadFile(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

func render(md goldmark.Markdown, source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("content: failed to render markdown: %w", err)
	}
	// raw HTML in the source is dropped unless html.WithUnsafe is set
	return template.HTML(buf.String()), nil
}
