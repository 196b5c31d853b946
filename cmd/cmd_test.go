package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("showcase %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestListDefaultPortfolio(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.yml")

	out := run(t, "list", "--config", cfg, "--category", "Portfolio", "--pages", "1", "--format", "text")
	if !strings.HasPrefix(out, "Portfolio: showing 5 of 5\n") {
		t.Errorf("unexpected summary:\n%s", out)
	}

	out = run(t, "list", "--config", cfg, "--category", "all", "--pages", "1", "--format", "markdown")
	if !strings.Contains(out, "# Domain Portfolio") {
		t.Errorf("expected markdown heading:\n%s", out)
	}
	if !strings.Contains(out, "--pages 2") {
		t.Errorf("expected a load-more hint:\n%s", out)
	}
}

func TestListRejectsUnknownFormat(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list", "--config", filepath.Join(t.TempDir(), "x.yml"), "--format", "csv"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for --format csv")
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CI", "true")

	out := run(t, "export", "--config", filepath.Join(dir, "missing.yml"), "--output", filepath.Join(dir, "site"))
	if !strings.Contains(out, "Wrote ") {
		t.Errorf("unexpected output:\n%s", out)
	}
	for _, f := range []string{"index.html", "Tech/index.html", "domains.json", "static/app.js"} {
		if _, err := os.Stat(filepath.Join(dir, "site", filepath.FromSlash(f))); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
}

func TestVersion(t *testing.T) {
	if out := run(t, "version"); out != "showcase "+Version+"\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestListWithConfigFile(t *testing.T) {
	cfg := filepath.Join("..", "testdata", "showcase.yml")

	out := run(t, "list", "--config", cfg, "--category", "AI", "--pages", "1", "--format", "text")
	if !strings.HasPrefix(out, "Artificial Intelligence: showing 2 of 3\n") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "$900") || !strings.Contains(out, "Ask") {
		t.Errorf("expected configured and default prices:\n%s", out)
	}
	if !strings.Contains(out, "1 more, use --pages 2") {
		t.Errorf("expected load-more hint:\n%s", out)
	}
}

func TestExportUsesContentDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CI", "true")

	run(t, "export", "--config", filepath.Join("..", "testdata", "showcase.yml"), "--output", dir)

	post, err := os.ReadFile(filepath.Join(dir, "blog", "2025-05-test-post.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(post), "Only used by the command tests.") {
		t.Errorf("post page missing body")
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "Can I pay in installments?") {
		t.Errorf("index page missing FAQ from content_dir")
	}
}
