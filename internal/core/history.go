package core

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// historyFile はデータファイルの YAML 表現。
type historyFile struct {
	Measurements []Measurement `yaml:"measurements"`
}

// HistoryManager は測定履歴の永続化と問い合わせを担う。
type HistoryManager interface {
	Add(m Measurement) (Measurement, error)
	Delete(id string) error
	Get(id string) (Measurement, error)
	List(filter HistoryFilter) []Measurement
	Latest(transformer string) (Measurement, error)
	Transformers() []string
	Summaries() []TransformerSummary
	Reload() error
	Path() string
}

type historyManager struct {
	mu    sync.RWMutex
	store YAMLStore
	path  string
	items []Measurement
	now   func() time.Time
}

// NewHistoryManager は path のデータファイルを読み込んだ HistoryManager を返す。
// ファイルが存在しない場合は空の履歴から始める。
func NewHistoryManager(store YAMLStore, path string) (HistoryManager, error) {
	h := &historyManager{
		store: store,
		path:  path,
		now:   time.Now,
	}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// Path はデータファイルのパスを返す。
func (h *historyManager) Path() string {
	return h.path
}

// Reload はデータファイルを読み直す。
func (h *historyManager) Reload() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.loadLocked(); err != nil {
		return err
	}
	slog.Debug("history loaded", "path", h.path, "count", len(h.items))
	return nil
}

// loadLocked はデータファイルを h.items に読み込む。呼び出し側が h.mu を保持すること。
func (h *historyManager) loadLocked() error {
	var f historyFile
	if err := h.store.Read(h.path, &f); err != nil {
		return fmt.Errorf("failed to read history %s: %w", h.path, err)
	}
	for i := range f.Measurements {
		f.Measurements[i].Transformer = NormalizeTransformerName(f.Measurements[i].Transformer)
	}
	h.items = f.Measurements
	return nil
}

// Add は測定値を検証して追加し、データファイルに保存する。
// ID とタイムスタンプが空の場合は採番・現在時刻で補う。
// 追加前にデータファイルを読み直し、他プロセスの追記を保持する。
func (h *historyManager) Add(m Measurement) (Measurement, error) {
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}
	m.Transformer = NormalizeTransformerName(m.Transformer)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = h.now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.loadLocked(); err != nil {
		return Measurement{}, err
	}
	for _, existing := range h.items {
		if existing.ID == m.ID {
			return Measurement{}, fmt.Errorf("%w: duplicate id %s", ErrInvalidMeasurement, m.ID)
		}
	}

	items := append(append([]Measurement(nil), h.items...), m)
	if err := h.store.Write(h.path, historyFile{Measurements: items}); err != nil {
		return Measurement{}, fmt.Errorf("failed to save history: %w", err)
	}
	h.items = items

	slog.Info("measurement added", "id", m.ID, "transformer", m.Transformer, "fdd", m.FDD, "rul", m.RUL)
	return m, nil
}

// Delete は指定 ID の測定値を削除する。削除前にデータファイルを読み直す。
func (h *historyManager) Delete(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.loadLocked(); err != nil {
		return err
	}

	idx := -1
	for i, m := range h.items {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrMeasurementNotFound, id)
	}

	items := make([]Measurement, 0, len(h.items)-1)
	items = append(items, h.items[:idx]...)
	items = append(items, h.items[idx+1:]...)
	if err := h.store.Write(h.path, historyFile{Measurements: items}); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	h.items = items

	slog.Info("measurement deleted", "id", id)
	return nil
}

// Get は指定 ID の測定値を返す。
func (h *historyManager) Get(id string) (Measurement, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, m := range h.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Measurement{}, fmt.Errorf("%w: %s", ErrMeasurementNotFound, id)
}

// List は条件に一致する測定値を新しい順に返す。
func (h *historyManager) List(filter HistoryFilter) []Measurement {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []Measurement
	for _, m := range h.items {
		if filter.Match(m) {
			out = append(out, m)
		}
	}
	sortNewestFirst(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}

// Latest は変圧器の最新の測定値を返す。
func (h *historyManager) Latest(transformer string) (Measurement, error) {
	list := h.List(HistoryFilter{Transformer: transformer, Limit: 1})
	if len(list) == 0 {
		return Measurement{}, fmt.Errorf("%w: %s", ErrTransformerNotFound, NormalizeTransformerName(transformer))
	}
	return list[0], nil
}

// Transformers は測定値のある変圧器名を昇順で返す。
func (h *historyManager) Transformers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for _, m := range h.items {
		if !seen[m.Transformer] {
			seen[m.Transformer] = true
			names = append(names, m.Transformer)
		}
	}
	sort.Strings(names)
	return names
}

// Summaries は変圧器ごとの最新状態を、重大度の高い順（同順位は名前順）に返す。
func (h *historyManager) Summaries() []TransformerSummary {
	h.mu.RLock()
	byName := make(map[string]*TransformerSummary)
	for _, m := range h.items {
		s, ok := byName[m.Transformer]
		if !ok {
			s = &TransformerSummary{Name: m.Transformer, Latest: m}
			byName[m.Transformer] = s
		}
		s.MeasurementCount++
		if m.Timestamp.After(s.Latest.Timestamp) {
			s.Latest = m
		}
	}
	h.mu.RUnlock()

	out := make([]TransformerSummary, 0, len(byName))
	for _, s := range byName {
		s.Category = s.Latest.Category()
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Category.Severity.Rank(), out[j].Category.Severity.Rank()
		if ri != rj {
			return ri > rj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortNewestFirst(items []Measurement) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
}
