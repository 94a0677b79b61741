package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/imaging/pixio"
	"github.com/cwbudde/algo-specmix/internal/testutil"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeImages(t *testing.T, dir string) []string {
	t.Helper()
	images := []grid.Real{
		testutil.Gradient(12, 10, 200),
		testutil.Checkerboard(10, 12, 20, 180),
		testutil.DeterministicNoise(1, 11, 11, 255),
		testutil.Constant(16, 16, 90),
	}
	paths := make([]string, len(images))
	for i, m := range images {
		paths[i] = filepath.Join(dir, "in"+string(rune('a'+i))+".png")
		if err := pixio.WriteFile(paths[i], m, false); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return paths
}

func TestMixWritesOutput(t *testing.T) {
	dir := isolate(t)
	paths := writeImages(t, dir)
	out := filepath.Join(dir, "out.png")

	args := append([]string{"mix"}, paths...)
	args = append(args,
		"--components", "real,imaginary,real,imaginary",
		"--weights", "1,1,0,0",
		"--crop", "outer", "--rect", "2,2,3,3",
		"-o", out)
	if _, err := run(t, args...); err != nil {
		t.Fatalf("mix: %v", err)
	}

	got, err := pixio.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Shape != (grid.Shape{Rows: 10, Cols: 10}) {
		t.Fatalf("output shape = %s, want 10x10", got.Shape)
	}
	testutil.RequireWithin(t, got.Data, 0, 225)
}

func TestMixRejectsMixedFamilies(t *testing.T) {
	dir := isolate(t)
	paths := writeImages(t, dir)

	args := append([]string{"mix"}, paths...)
	args = append(args, "--components", "magnitude,real,phase,imaginary")
	if _, err := run(t, args...); err == nil || !strings.Contains(err.Error(), "invalid component mix") {
		t.Fatalf("err = %v, want invalid component mix", err)
	}
}

func TestMixUsesConfigFile(t *testing.T) {
	dir := isolate(t)
	paths := writeImages(t, dir)
	cfg := filepath.Join(dir, "specmix.yaml")
	yaml := "output:\n  path: from-config.png\nmix:\n  components: [phase, phase, phase, phase]\n"
	if err := os.WriteFile(cfg, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, append([]string{"mix"}, paths...)...); err != nil {
		t.Fatalf("mix: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-config.png")); err != nil {
		t.Fatalf("expected output from config: %v", err)
	}
}

func TestInspect(t *testing.T) {
	dir := isolate(t)
	paths := writeImages(t, dir)
	dump := filepath.Join(dir, "dump")

	out, err := run(t, "inspect", "--dump", dump, paths[0])
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"shape:  12x10", "magnitude", "imaginary", "STDDEV"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	for _, c := range []string{"magnitude", "phase", "real", "imaginary"} {
		if _, err := os.Stat(filepath.Join(dump, "ina_"+c+".png")); err != nil {
			t.Fatalf("missing dump for %s: %v", c, err)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "specmix.yaml")

	if _, err := run(t, "config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := run(t, "config", "init", path); err == nil {
		t.Fatal("config init must not overwrite without --force")
	}

	out, err := run(t, "--config", path, "config", "show", "--log-level", "debug")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "log_level: debug") || !strings.Contains(out, "clip_max: 225") {
		t.Fatalf("unexpected config:\n%s", out)
	}
}
