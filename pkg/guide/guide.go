// Package guide serves the built-in help topics shown by "bases guide" and
// by the Ayuda entry of the interactive menu.
package guide

import (
	"embed"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/darthunder/bases/pkg/errors"
)

//go:embed topics/*.md
var embedded embed.FS

// DefaultTopic is shown when no topic is requested
const DefaultTopic = "uso"

// Topic is one help page
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Manager indexes the topics found in a filesystem
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Options configures a Manager
type Options struct {
	// Extensions considered as topics, [".txt", ".md"] when empty
	Extensions []string
	// Renderer for topic content, PlainRenderer when nil
	Renderer Renderer
}

// New returns a manager over the built-in topics.
func New(r Renderer) *Manager {
	m, err := NewFromFS(embedded, Options{Renderer: r})
	if err != nil {
		panic(err)
	}
	return m
}

// NewFromFS scans fsys for topic files.
func NewFromFS(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, FilePath: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan topics")
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name, case-insensitively
func (m *Manager) GetTopic(name string) (*Topic, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultTopic
	}
	t, ok := m.topics[name]
	return t, ok
}

// ListTopics returns all topic names sorted alphabetically
func (m *Manager) ListTopics() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show writes the rendered topic to w.
func (m *Manager) Show(w io.Writer, name string) error {
	t, ok := m.GetTopic(name)
	if !ok {
		return errors.Newf(errors.ErrNotFound, "no existe el tema de ayuda %q", name).
			WithDetail("topics", strings.Join(m.ListTopics(), ", "))
	}

	if _, err := io.WriteString(w, m.renderer.Render(t.Content, path.Ext(t.FilePath))); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write topic")
	}
	return nil
}
