package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/asciirename/internal/config"
	"github.com/backmassage/asciirename/internal/fsx"
	"github.com/backmassage/asciirename/internal/logging"
	"github.com/backmassage/asciirename/internal/naming"
)

func newTestLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func TestRun_TransliteratesFilename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "café.txt")
	write(t, src, "content")

	cfg := config.DefaultConfig()
	cfg.Paths = []string{src}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Renamed != 1 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 1 renamed, 0 skipped", stats)
	}
	if exists(src) {
		t.Error("source still exists")
	}
	renamed := filepath.Join(dir, "cafe.txt")
	if !exists(renamed) {
		t.Fatalf("%s not created", renamed)
	}
	b, _ := os.ReadFile(renamed)
	if string(b) != "content" {
		t.Errorf("content = %q, want %q", b, "content")
	}
}

func TestRun_SanitizesShellMetacharacters(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "price$list;v2.txt")
	write(t, src, "x")

	cfg := config.DefaultConfig()
	cfg.Paths = []string{src}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Renamed != 1 {
		t.Fatalf("stats = %+v, want 1 renamed", stats)
	}
	if !exists(filepath.Join(dir, "price_list_v2.txt")) {
		t.Error("sanitized name not created")
	}
}

func TestRun_AsciiSafeNameIsNoop(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "plain.txt")
	write(t, src, "x")

	cfg := config.DefaultConfig()
	cfg.Paths = []string{src}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Renamed != 0 || stats.Skipped != 0 {
		t.Errorf("stats = %+v, want all zero (silent no-op)", stats)
	}
	if !exists(src) {
		t.Error("no-op operation must leave the file in place")
	}
}

func TestRun_RecursiveTree(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "répertoire")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	write(t, filepath.Join(sub, "naïve.txt"), "x")

	cfg := config.DefaultConfig()
	cfg.Recursive = true
	cfg.Paths = []string{sub}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Renamed != 2 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 2 renamed, 0 skipped", stats)
	}
	// The child is renamed first, then the directory; the final layout must
	// be repertoire/naive.txt with nothing left under the old names.
	if !exists(filepath.Join(dir, "repertoire", "naive.txt")) {
		t.Error("expected repertoire/naive.txt")
	}
	if exists(sub) {
		t.Error("old directory name still present")
	}
	if exists(filepath.Join(dir, "répertoire", "naive.txt")) {
		t.Error("child was renamed under the stale directory name")
	}
}

func TestRun_NoOpLeavesFilesystemUntouched(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "répertoire")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	write(t, filepath.Join(sub, "naïve.txt"), "x")

	cfg := config.DefaultConfig()
	cfg.Recursive = true
	cfg.NoOp = true
	cfg.Paths = []string{sub}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	// Same intended-rename count as a real run.
	if stats.Renamed != 2 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 2 renamed, 0 skipped", stats)
	}
	if !exists(filepath.Join(sub, "naïve.txt")) {
		t.Error("no-op mode must not move anything")
	}
	if exists(filepath.Join(dir, "repertoire")) {
		t.Error("no-op mode created a renamed directory")
	}
}

func TestRun_CollisionWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "café.txt")
	target := filepath.Join(dir, "cafe.txt")
	write(t, src, "accented")
	write(t, target, "plain")

	cfg := config.DefaultConfig()
	cfg.Paths = []string{src}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Fatalf("stats = %+v, want 1 skipped, 0 renamed", stats)
	}
	// Both entries untouched.
	b, _ := os.ReadFile(src)
	if string(b) != "accented" {
		t.Error("source modified on collision")
	}
	b, _ = os.ReadFile(target)
	if string(b) != "plain" {
		t.Error("target modified on collision")
	}
}

func TestRun_CollisionWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "café.txt")
	target := filepath.Join(dir, "cafe.txt")
	write(t, src, "accented")
	write(t, target, "plain")

	cfg := config.DefaultConfig()
	cfg.Overwrite = true
	cfg.Paths = []string{src}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Renamed != 1 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 1 renamed, 0 skipped", stats)
	}
	if exists(src) {
		t.Error("source still exists after overwrite")
	}
	b, _ := os.ReadFile(target)
	if string(b) != "accented" {
		t.Errorf("target content = %q, want the renamed source's content", b)
	}
}

func TestRun_MissingInputContributesNothing(t *testing.T) {
	dir := t.TempDir()
	ghost := filepath.Join(dir, "ghost.txt")
	src := filepath.Join(dir, "naïve.txt")
	write(t, src, "x")

	cfg := config.DefaultConfig()
	cfg.Paths = []string{ghost, src}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	// The missing input is reported but the run continues with the rest.
	if stats.Renamed != 1 || stats.Skipped != 0 {
		t.Errorf("stats = %+v, want 1 renamed, 0 skipped", stats)
	}
	if !exists(filepath.Join(dir, "naive.txt")) {
		t.Error("remaining input was not processed")
	}
}

// caseFoldFS fakes an insensitive filesystem (in the spirit of
// case/diacritic-insensitive volumes): names are equal up to ASCII folding,
// so an entry can be reached under several spellings.
type caseFoldFS struct {
	entries map[string]bool // path -> isDir
	renames [][2]string
}

func fold(path string) string {
	ascii, err := naming.Transliterate(path)
	if err != nil {
		return strings.ToLower(path)
	}
	return strings.ToLower(ascii)
}

func (f *caseFoldFS) lookup(path string) (string, bool) {
	for k := range f.entries {
		if fold(k) == fold(path) {
			return k, true
		}
	}
	return "", false
}

func (f *caseFoldFS) Exists(path string) bool {
	_, ok := f.lookup(path)
	return ok
}

func (f *caseFoldFS) IsDir(path string) bool {
	k, ok := f.lookup(path)
	return ok && f.entries[k]
}

func (f *caseFoldFS) ListChildren(path string) ([]string, error) {
	return nil, nil
}

func (f *caseFoldFS) Equivalent(a, b string) bool {
	return fold(a) == fold(b)
}

func (f *caseFoldFS) Rename(from, to string) error {
	k, _ := f.lookup(from)
	isDir := f.entries[k]
	delete(f.entries, k)
	f.entries[to] = isDir
	f.renames = append(f.renames, [2]string{from, to})
	return nil
}

func TestRun_EquivalentTargetProceedsWithoutOverwrite(t *testing.T) {
	// Case-insensitive aliasing: the target "exists" because it is the
	// source itself under another spelling, so the rename must proceed even
	// though --overwrite is not set.
	fsys := &caseFoldFS{entries: map[string]bool{
		"/data":          true,
		"/data/CAFÉ.txt": false,
	}}

	cfg := config.DefaultConfig()
	cfg.Paths = []string{"/data/CAFÉ.txt"}
	stats := Run(&cfg, newTestLogger(t), fsys)

	if stats.Renamed != 1 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 1 renamed, 0 skipped", stats)
	}
	if len(fsys.renames) != 1 || fsys.renames[0] != [2]string{"/data/CAFÉ.txt", "/data/CAFE.txt"} {
		t.Errorf("renames = %v", fsys.renames)
	}
}

func TestRun_MultipleCollisionsAllCounted(t *testing.T) {
	dir := t.TempDir()
	for _, pair := range [][2]string{
		{"café.txt", "cafe.txt"},
		{"naïve.txt", "naive.txt"},
	} {
		write(t, filepath.Join(dir, pair[0]), "src")
		write(t, filepath.Join(dir, pair[1]), "dst")
	}

	cfg := config.DefaultConfig()
	cfg.Paths = []string{
		filepath.Join(dir, "café.txt"),
		filepath.Join(dir, "naïve.txt"),
	}
	stats := Run(&cfg, newTestLogger(t), fsx.OS{})

	if stats.Skipped != 2 {
		t.Errorf("stats = %+v, want 2 skipped (one per collision)", stats)
	}
}
