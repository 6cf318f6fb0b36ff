package template

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vslice-dev/vslice/pkg/models"
)

func TestEmbeddedAppTemplates(t *testing.T) {
	dest := t.TempDir()
	w := NewWalker(Templates())

	result, err := w.RenderTree(context.Background(), "app", dest, map[string]any{
		"Name":          "blog",
		"PythonVersion": "3.11.4",
	})
	if err != nil {
		t.Fatalf("RenderTree error: %v", err)
	}

	for _, rel := range []string{
		"app/__init__.py",
		"app/blueprints.py",
		"app/database.py",
		"app/registry.py",
		"wsgi.py",
		"README.md",
		".gitignore",
		".python-version",
	} {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}

	for _, rel := range result.Files {
		if strings.HasSuffix(rel, TemplateSuffix) {
			t.Errorf("suffix not stripped: %s", rel)
		}
	}

	version, _ := os.ReadFile(filepath.Join(dest, ".python-version"))
	if string(version) != "3.11.4\n" {
		t.Errorf(".python-version = %q", string(version))
	}
}

func TestEmbeddedModelTemplate(t *testing.T) {
	r := NewRenderer(Templates())

	out, err := r.Render("ingredient/model.py.tmpl", map[string]any{
		"Name":      "user_profile",
		"NameCamel": "UserProfile",
		"Columns": []models.Column{
			{Name: "age", Type: models.ColumnInt},
			{Name: "name", Type: models.ColumnStr},
		},
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	content := string(out)
	if !strings.Contains(content, "class UserProfile(db.Model):") {
		t.Errorf("missing class declaration:\n%s", content)
	}
	if !strings.Contains(content, `__tablename__ = "user_profile"`) {
		t.Errorf("missing table name:\n%s", content)
	}

	want := "    age = Column(Integer)\n    name = Column(String)\n"
	if !strings.HasSuffix(content, want) {
		t.Errorf("columns not rendered in order, got:\n%s", content)
	}
}

func TestEmbeddedRouteAndServiceTemplates(t *testing.T) {
	r := NewRenderer(Templates())

	route, err := r.Render("ingredient/route.py.tmpl", map[string]any{
		"Feature": "accounts",
		"Name":    "user",
	})
	if err != nil {
		t.Fatalf("route Render error: %v", err)
	}
	if !strings.Contains(string(route), "from app.features.accounts.domain import user_service") {
		t.Errorf("route import missing:\n%s", route)
	}
	if !strings.HasPrefix(string(route), `"""HTTP routes for User in the accounts slice."""`) {
		t.Errorf("route docstring missing:\n%s", route)
	}
	if !strings.Contains(string(route), "registry.register(") {
		t.Errorf("route must register its blueprint:\n%s", route)
	}

	service, err := r.Render("ingredient/service.py.tmpl", map[string]any{
		"Feature":   "accounts",
		"Name":      "user",
		"NameCamel": "User",
	})
	if err != nil {
		t.Fatalf("service Render error: %v", err)
	}
	if !strings.Contains(string(service), "from app.features.accounts.models.user import User") {
		t.Errorf("service import missing:\n%s", service)
	}

	// The route template does not receive NameCamel.
	if _, err := r.Render("ingredient/service.py.tmpl", map[string]any{"Feature": "a", "Name": "b"}); err == nil {
		t.Error("expected error when NameCamel is missing")
	}
}
