package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/archive"
	"github.com/matzehuels/graphprep/pkg/config"
)

const triangleGML = `graph [
  node [ id 0 label "a" value 0 ]
  node [ id 1 label "b" value 1 ]
  node [ id 2 label "c" value 1 ]
  edge [ source 0 target 1 ]
  edge [ source 1 target 2 ]
  edge [ source 2 target 0 ]
]
`

func testCLI(t *testing.T, base string) *CLI {
	t.Helper()
	cfg := config.FromEnv(func(string) string { return "" })
	cfg.BasePath = base
	return &CLI{Logger: newLogger(&bytes.Buffer{}, log.InfoLevel), Config: cfg}
}

func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeGraph(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tri.gml")
	if err := os.WriteFile(path, []byte(triangleGML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI(t, "data/").RootCommand()
	want := []string{"convert", "inspect", "magfit", "export", "features", "run", "publish", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeGraph(t, dir)

	if _, err := execute(t, testCLI(t, dir), "convert", src, filepath.Join(dir, "out", "tri"), "--attr-mode", "values"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	a, err := archive.Open(filepath.Join(dir, "out", "tri.npz"))
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	if a.Attr.Rows() != 3 || len(a.Labels) != 3 {
		t.Errorf("archive = %d attr rows, %d labels", a.Attr.Rows(), len(a.Labels))
	}
}

func TestConvertCommandBadMode(t *testing.T) {
	dir := t.TempDir()
	src := writeGraph(t, dir)
	if _, err := execute(t, testCLI(t, dir), "convert", src, filepath.Join(dir, "x"), "--attr-mode", "dense"); err == nil {
		t.Error("expected error for unknown attribute mode")
	}
}

func TestMagfitCommands(t *testing.T) {
	dir := t.TempDir()
	src := writeGraph(t, dir)
	c := testCLI(t, dir)

	if _, err := execute(t, c, "magfit", "prepare", "tri", src, "-k", "2"); err != nil {
		t.Fatalf("magfit prepare: %v", err)
	}
	conf, err := os.ReadFile(filepath.Join(dir, "tri", "inti.config"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(conf), "\n") != 2 {
		t.Errorf("inti.config = %q", conf)
	}

	out, err := execute(t, c, "magfit", "result", "tri")
	if err != nil {
		t.Fatalf("magfit result: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(dir, "tri", "tri.txt"); got != want {
		t.Errorf("result path = %q, want %q", got, want)
	}
}

func TestMagfitPrepareRequiresAttributes(t *testing.T) {
	dir := t.TempDir()
	src := writeGraph(t, dir)
	if _, err := execute(t, testCLI(t, dir), "magfit", "prepare", "tri", src); err == nil {
		t.Error("expected error without --attributes")
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeGraph(t, dir)
	dst := filepath.Join(dir, "tri.edgelist")

	if _, err := execute(t, testCLI(t, dir), "export", src, dst); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "a b\na c\nb c\n"; got != want {
		t.Errorf("edge list = %q, want %q", got, want)
	}
}

func TestFeaturesCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "feat.txt")
	if err := os.WriteFile(src, []byte("1 2 3\n4 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "feat.csv")

	if _, err := execute(t, testCLI(t, dir), "features", src, dst); err != nil {
		t.Fatalf("features: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if got, want := string(data), "1,2,3\n4,5\n"; got != want {
		t.Errorf("features = %q, want %q", got, want)
	}
}

func TestPublishRequiresStorage(t *testing.T) {
	if _, err := execute(t, testCLI(t, "data/"), "publish", t.TempDir()); err == nil {
		t.Error("expected error without storage configuration")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"g.adjlist", "adjlist", false},
		{"g.json", "json", false},
		{"g.gml", "gml", false},
		{"g.txt", "edgelist", false},
		{"g.dot", "dot", false},
		{"g.gv", "dot", false},
		{"G.SVG", "svg", false},
		{"g.png", "", true},
	}
	for _, tt := range tests {
		got, err := formatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestFormatCounts(t *testing.T) {
	got := formatCounts(labelCounts([]int64{1, 0, 1, 2, 1}))
	if want := "0=1 1=3 2=1"; got != want {
		t.Errorf("formatCounts = %q, want %q", got, want)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, testCLI(t, t.TempDir()), "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "graphprep") {
		t.Error("bash completion should mention the program name")
	}

	if _, err := execute(t, testCLI(t, t.TempDir()), "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
