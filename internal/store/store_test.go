package store

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/tuicube/internal/history"
	"github.com/verte-zerg/tuicube/internal/model"
)

func TestOpenCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "times.txt")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
	h, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("expected empty history, got %d", h.Len())
	}
}

func TestOpenFailsOnUnusablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	if _, err := Open(filepath.Join(blocker, "times.txt")); err == nil {
		t.Fatalf("expected error when parent is a file")
	}
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	if err := os.WriteFile(path, []byte("12.5\nabc\n7.0\n"), 0o644); err != nil {
		t.Fatalf("write times: %v", err)
	}
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	h, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	times := h.Times()
	if len(times) != 2 || times[0] != 12.5 || times[1] != 7.0 {
		t.Fatalf("unexpected times: %v", times)
	}
	for _, s := range h.Solves() {
		if s.Ao5 != nil || s.Ao12 != nil {
			t.Fatalf("expected no averages with two solves")
		}
	}
}

func TestLoadSkipsNonFiniteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	if err := os.WriteFile(path, []byte("NaN\n5\n4\ninf\n-Infinity\n"), 0o644); err != nil {
		t.Fatalf("write times: %v", err)
	}
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	h, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	times := h.Times()
	if len(times) != 2 || times[0] != 5 || times[1] != 4 {
		t.Fatalf("unexpected times: %v", times)
	}
	sum := h.Summary()
	if sum.PBSingle == nil || *sum.PBSingle != 4 {
		t.Fatalf("expected pb single 4, got %v", sum.PBSingle)
	}
	if sum.Mean == nil || *sum.Mean != 4.5 {
		t.Fatalf("expected mean 4.5, got %v", sum.Mean)
	}
}

func TestSaveKeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if err := st.SaveTimes([]float64{1.5}); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o640 {
		t.Fatalf("expected mode 0640, got %o", got)
	}
}

func TestSaveWritesOneTimePerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.SaveTimes([]float64{12.5, 7, 9.125}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "12.5\n7\n9.125\n" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestSaveAfterDeleteKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	h := history.FromTimes([]float64{5, 4, 3})
	h.Delete(1)
	if err := st.Save(h); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "5\n3\n" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestRoundTripReproducesStatistics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	rnd := rand.New(rand.NewSource(11))
	h := history.New()
	for i := 0; i < 150; i++ {
		h.Insert(model.NewSolve(6 + rnd.Float64()*12))
	}
	if err := st.Save(h); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want, got := h.Times(), reloaded.Times()
	if len(want) != len(got) {
		t.Fatalf("expected %d times, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("time %d differs: %v vs %v", i, want[i], got[i])
		}
	}
	a, b := h.Summary(), reloaded.Summary()
	if *a.Mean != *b.Mean || *a.PBSingle != *b.PBSingle || *a.PBAo5 != *b.PBAo5 ||
		*a.PBAo12 != *b.PBAo12 || *a.Ao100 != *b.Ao100 {
		t.Fatalf("aggregates differ after reload: %+v vs %+v", a, b)
	}
}
