package core

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func newTestHistory(t *testing.T) (*historyManager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.yaml")
	hm, err := NewHistoryManager(newTestStore(), path)
	if err != nil {
		t.Fatalf("NewHistoryManager() error = %v", err)
	}
	h := hm.(*historyManager)
	return h, path
}

func at(day int) time.Time {
	return time.Date(2026, 1, day, 8, 0, 0, 0, time.UTC)
}

func mustAdd(t *testing.T, h HistoryManager, m Measurement) Measurement {
	t.Helper()
	added, err := h.Add(m)
	if err != nil {
		t.Fatalf("Add(%+v) error = %v", m, err)
	}
	return added
}

func TestHistoryManager_AddAssignsIDAndTimestamp(t *testing.T) {
	h, _ := newTestHistory(t)
	fixed := at(5)
	h.now = func() time.Time { return fixed }

	m := validMeasurement()
	m.Transformer = "  Main-A "
	got := mustAdd(t, h, m)

	if got.ID == "" {
		t.Error("ID should be assigned")
	}
	if !got.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, fixed)
	}
	if got.Transformer != "main-a" {
		t.Errorf("Transformer = %q, want normalized", got.Transformer)
	}
}

func TestHistoryManager_AddRejectsInvalid(t *testing.T) {
	h, _ := newTestHistory(t)
	m := validMeasurement()
	m.H2 = -5

	if _, err := h.Add(m); !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("Add() error = %v, want ErrInvalidMeasurement", err)
	}
	if len(h.List(HistoryFilter{})) != 0 {
		t.Error("invalid measurement should not be stored")
	}
}

func TestHistoryManager_AddRejectsDuplicateID(t *testing.T) {
	h, _ := newTestHistory(t)
	m := validMeasurement()
	m.ID = "fixed-id"
	mustAdd(t, h, m)

	if _, err := h.Add(m); !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("Add(duplicate) error = %v, want ErrInvalidMeasurement", err)
	}
}

func TestHistoryManager_PersistsAcrossReload(t *testing.T) {
	h, path := newTestHistory(t)
	m := validMeasurement()
	m.Timestamp = at(1)
	added := mustAdd(t, h, m)

	h2, err := NewHistoryManager(newTestStore(), path)
	if err != nil {
		t.Fatalf("NewHistoryManager() error = %v", err)
	}
	got, err := h2.Get(added.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Transformer != "t1" || got.RUL != 730 || !got.Timestamp.Equal(at(1)) {
		t.Errorf("reloaded = %+v", got)
	}
}

func TestHistoryManager_ListNewestFirstAndFilter(t *testing.T) {
	h, _ := newTestHistory(t)
	for i, name := range []string{"t1", "t2", "t1", "t1"} {
		m := validMeasurement()
		m.Transformer = name
		m.Timestamp = at(i + 1)
		mustAdd(t, h, m)
	}

	all := h.List(HistoryFilter{})
	if len(all) != 4 {
		t.Fatalf("len(List) = %d, want 4", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Timestamp.After(all[i-1].Timestamp) {
			t.Errorf("List not newest first at %d", i)
		}
	}

	t1 := h.List(HistoryFilter{Transformer: "T1"})
	if len(t1) != 3 {
		t.Errorf("len(List(t1)) = %d, want 3", len(t1))
	}

	ranged := h.List(HistoryFilter{Since: at(2), Until: at(4)})
	if len(ranged) != 2 {
		t.Errorf("len(List(range)) = %d, want 2", len(ranged))
	}

	limited := h.List(HistoryFilter{Limit: 1})
	if len(limited) != 1 || !limited[0].Timestamp.Equal(at(4)) {
		t.Errorf("List(limit 1) = %+v, want newest", limited)
	}
}

func TestHistoryManager_Latest(t *testing.T) {
	h, _ := newTestHistory(t)
	for _, day := range []int{3, 9, 6} {
		m := validMeasurement()
		m.Timestamp = at(day)
		m.RUL = float64(day)
		mustAdd(t, h, m)
	}

	got, err := h.Latest("t1")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.RUL != 9 {
		t.Errorf("Latest().RUL = %v, want 9", got.RUL)
	}

	if _, err := h.Latest("ghost"); !errors.Is(err, ErrTransformerNotFound) {
		t.Errorf("Latest(ghost) error = %v, want ErrTransformerNotFound", err)
	}
}

func TestHistoryManager_Delete(t *testing.T) {
	h, path := newTestHistory(t)
	a := mustAdd(t, h, validMeasurement())
	b := mustAdd(t, h, validMeasurement())

	if err := h.Delete(a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := h.Get(a.ID); !errors.Is(err, ErrMeasurementNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrMeasurementNotFound", err)
	}
	if err := h.Delete(a.ID); !errors.Is(err, ErrMeasurementNotFound) {
		t.Errorf("Delete(again) error = %v, want ErrMeasurementNotFound", err)
	}

	h2, err := NewHistoryManager(newTestStore(), path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h2.Get(b.ID); err != nil {
		t.Errorf("remaining measurement lost after reload: %v", err)
	}
}

func TestHistoryManager_WritesKeepOtherWriters(t *testing.T) {
	h, path := newTestHistory(t)
	own := mustAdd(t, h, validMeasurement())

	// 別プロセス相当の HistoryManager が同じファイルに追記する
	other, err := NewHistoryManager(newTestStore(), path)
	if err != nil {
		t.Fatal(err)
	}
	external := mustAdd(t, other, validMeasurement())

	// h は external をまだ読み込んでいない
	if err := h.Delete(own.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := h.Get(external.ID); err != nil {
		t.Errorf("Get(external) after Delete error = %v", err)
	}

	third := mustAdd(t, other, validMeasurement())
	added := mustAdd(t, h, validMeasurement())

	reloaded, err := NewHistoryManager(newTestStore(), path)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{external.ID, third.ID, added.ID} {
		if _, err := reloaded.Get(id); err != nil {
			t.Errorf("measurement %s lost: %v", id, err)
		}
	}
	if _, err := reloaded.Get(own.ID); !errors.Is(err, ErrMeasurementNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrMeasurementNotFound", err)
	}
}

func TestHistoryManager_TransformersAndSummaries(t *testing.T) {
	h, _ := newTestHistory(t)
	add := func(name string, day int, code float64) {
		m := validMeasurement()
		m.Transformer = name
		m.Timestamp = at(day)
		m.FDD = code
		mustAdd(t, h, m)
	}
	add("beta", 1, 4)
	add("beta", 2, 1)  // beta は最新で正常
	add("alpha", 1, 3) // alpha は軽警報
	add("gamma", 1, 4) // gamma は重警報
	add("delta", 1, 9) // delta は不明

	names := h.Transformers()
	want := []string{"alpha", "beta", "delta", "gamma"}
	if len(names) != len(want) {
		t.Fatalf("Transformers() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Transformers()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	sums := h.Summaries()
	order := []string{"gamma", "alpha", "beta", "delta"}
	if len(sums) != len(order) {
		t.Fatalf("len(Summaries) = %d, want %d", len(sums), len(order))
	}
	for i, name := range order {
		if sums[i].Name != name {
			t.Errorf("Summaries()[%d].Name = %q, want %q", i, sums[i].Name, name)
		}
	}
	if sums[2].MeasurementCount != 2 {
		t.Errorf("beta MeasurementCount = %d, want 2", sums[2].MeasurementCount)
	}
	if sums[2].Latest.FDD != 1 {
		t.Errorf("beta latest FDD = %v, want 1", sums[2].Latest.FDD)
	}
}

func TestHistoryManager_ConcurrentAdd(t *testing.T) {
	h, _ := newTestHistory(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.Add(validMeasurement()); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if got := len(h.List(HistoryFilter{})); got != 20 {
		t.Errorf("len(List) = %d, want 20", got)
	}
}
