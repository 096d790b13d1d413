package workspace

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/suggest"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

type catalog struct {
	Templates []templateDef `yaml:"templates"`
}

type templateDef struct {
	Type        string         `yaml:"type"`
	Description string         `yaml:"description"`
	Folders     []string       `yaml:"folders"`
	Files       []templateFile `yaml:"files"`
}

type templateFile struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

type templateData struct {
	Name string
}

var loadCatalog = sync.OnceValues(func() (catalog, error) {
	return parseCatalog(templatesYAML)
})

func parseCatalog(data []byte) (catalog, error) {
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return catalog{}, fmt.Errorf("decode scaffold templates: %w", err)
	}
	for _, def := range cat.Templates {
		for _, folder := range def.Folders {
			if !templateRelative(folder) {
				return catalog{}, fmt.Errorf("scaffold template %s: invalid folder path %q", def.Type, folder)
			}
		}
		for _, file := range def.Files {
			if !templateRelative(file.Path) {
				return catalog{}, fmt.Errorf("scaffold template %s: invalid file path %q", def.Type, file.Path)
			}
		}
	}
	return cat, nil
}

// templateRelative reports whether p names something strictly below the
// scaffold directory.
func templateRelative(p string) bool {
	if p == "" || path.IsAbs(p) || filepath.IsAbs(p) || strings.Contains(p, `\`) {
		return false
	}
	cleaned := path.Clean(p)
	return cleaned != "." && cleaned != ".." && !strings.HasPrefix(cleaned, "../")
}

func (c catalog) lookup(kind string) (templateDef, bool) {
	for _, def := range c.Templates {
		if def.Type == kind {
			return def, true
		}
	}
	return templateDef{}, false
}

func (c catalog) names() []string {
	names := make([]string, 0, len(c.Templates))
	for _, def := range c.Templates {
		names = append(names, def.Type)
	}
	return names
}

func (c catalog) list() []domain.Template {
	out := make([]domain.Template, 0, len(c.Templates))
	for _, def := range c.Templates {
		out = append(out, domain.Template{Type: def.Type, Description: def.Description})
	}
	return out
}

// Templates lists the built-in scaffold catalogue.
func Templates() ([]domain.Template, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return cat.list(), nil
}

// ScaffoldProject materializes a template into a new directory called name.
// The directory must be absent or empty, so a scaffold never overwrites
// existing work.
func (w *Workspace) ScaffoldProject(ctx context.Context, kind, name string) (domain.ScaffoldResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScaffoldResult{}, err
	}

	def, ok := w.catalog.lookup(strings.ToLower(strings.TrimSpace(kind)))
	if !ok {
		return domain.ScaffoldResult{}, domain.NewActionError(domain.ErrUnknownTemplate, kind, suggest.Hint(kind, w.catalog.names()))
	}

	abs, rel, err := w.resolve(name)
	if err != nil {
		return domain.ScaffoldResult{}, err
	}
	if rel == "." {
		return domain.ScaffoldResult{}, domain.NewActionError(domain.ErrAlreadyExists, name, "scaffold into a new sub-directory")
	}
	if err := w.requireEmptyDir(abs, rel); err != nil {
		return domain.ScaffoldResult{}, err
	}

	rendered, err := renderFiles(def, templateData{Name: path.Base(rel)})
	if err != nil {
		return domain.ScaffoldResult{}, err
	}

	result := domain.ScaffoldResult{Template: def.Type, Dir: rel}

	if err := w.ensureDir(abs); err != nil {
		return result, err
	}
	for _, folder := range def.Folders {
		target, folderRel, err := w.resolveBelow(abs, rel, folder)
		if err != nil {
			return result, err
		}
		if err := w.ensureDir(target); err != nil {
			return result, err
		}
		result.Folders = append(result.Folders, folderRel)
	}
	for _, file := range def.Files {
		target, fileRel, err := w.resolveBelow(abs, rel, file.Path)
		if err != nil {
			return result, err
		}
		if err := w.ensureDir(filepath.Dir(target)); err != nil {
			return result, err
		}
		if err := w.writeAtomic(target, rendered[file.Path], defaultFileMode); err != nil {
			return result, fmt.Errorf("write %s: %w", fileRel, err)
		}
		result.Files = append(result.Files, fileRel)
	}

	return result, nil
}

// resolveBelow resolves a template entry through the workspace sandbox and
// keeps it inside the scaffold directory dirAbs.
func (w *Workspace) resolveBelow(dirAbs, dirRel, entry string) (string, string, error) {
	if !templateRelative(entry) {
		return "", "", domain.NewActionError(domain.ErrPathEscape, path.Join(dirRel, entry), "template entry leaves the project directory")
	}
	target, rel, err := w.resolve(path.Join(dirRel, entry))
	if err != nil {
		return "", "", err
	}
	if target == dirAbs || !domain.Within(dirAbs, target) {
		return "", "", domain.NewActionError(domain.ErrPathEscape, rel, "template entry leaves the project directory")
	}
	return target, rel, nil
}

func (w *Workspace) requireEmptyDir(abs, rel string) error {
	info, err := w.fs.Stat(abs)
	if err != nil {
		if missing(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", rel, err)
	}
	if !info.IsDir() {
		return domain.NewActionError(domain.ErrNotADirectory, rel, "a file occupies this path")
	}

	empty, err := afero.IsEmpty(w.fs, abs)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", rel, err)
	}
	if !empty {
		return domain.NewActionError(domain.ErrAlreadyExists, rel, "directory is not empty")
	}
	return nil
}

func renderFiles(def templateDef, data templateData) (map[string][]byte, error) {
	out := make(map[string][]byte, len(def.Files))
	for _, file := range def.Files {
		tmpl, err := template.New(file.Path).Delims("[[", "]]").Option("missingkey=error").Parse(file.Content)
		if err != nil {
			return nil, fmt.Errorf("parse template %s/%s: %w", def.Type, file.Path, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render template %s/%s: %w", def.Type, file.Path, err)
		}
		out[file.Path] = buf.Bytes()
	}
	return out, nil
}
