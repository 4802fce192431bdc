// Package storage implements the per-user namespaced collection store. Each
// collection is one JSON document in the key-value store, loaded in full and
// rewritten in full on every mutation (read-modify-write, last writer wins —
// safe only because there is a single logical writer).
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/logger"
	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/utils"
)

// ErrPastReadOnly is returned when a mutation targets a date before today.
var ErrPastReadOnly = errors.New("past days are read-only")

// Collections provides access to the six data collections (plus the widget
// order) owned by one identifier. The owner is injected explicitly so tests
// can run several isolated owners over the same store.
type Collections struct {
	store kv.Store
	owner string
}

// ForOwner binds a collection view to an owner identifier. An empty owner
// falls back to the guest namespace, which the surface layer should prevent
// from ever holding meaningful data.
func ForOwner(s kv.Store, owner string) *Collections {
	if owner == "" {
		owner = constants.GuestID
	}
	return &Collections{store: s, owner: owner}
}

// Owner returns the identifier this view is bound to.
func (c *Collections) Owner() string {
	return c.owner
}

// Key computes the namespaced storage key for a collection base key.
func Key(owner, base string) string {
	if owner == "" || owner == constants.GuestID {
		return constants.GuestID + "_" + base
	}
	return "user_" + owner + "_" + base
}

func (c *Collections) key(base string) string {
	return Key(c.owner, base)
}

// load deserializes a collection, degrading to the empty default on a
// missing key, a storage error, or corrupted JSON. Low-level failures are
// logged and swallowed here; this is non-critical personal data and
// availability wins over correctness-signaling.
func load[T any](c *Collections, base string, def T) T {
	raw, ok, err := c.store.Get(c.key(base))
	if err != nil {
		logger.Warn("Failed to read collection", "key", c.key(base), "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("Discarding corrupted collection", "key", c.key(base), "error", err)
		return def
	}
	return v
}

func save[T any](c *Collections, base string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", base, err)
	}
	return c.store.Set(c.key(base), string(raw))
}

// --- Habits ---

func (c *Collections) Habits() []models.Habit {
	return load(c, constants.BaseKeyHabits, []models.Habit{})
}

func (c *Collections) SaveHabits(habits []models.Habit) error {
	return save(c, constants.BaseKeyHabits, habits)
}

func (c *Collections) AddHabit(h models.Habit) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.History == nil {
		h.History = map[string]bool{}
	}
	h.Icon = models.NormalizeIcon(string(h.Icon))
	return c.SaveHabits(append(c.Habits(), h))
}

func (c *Collections) DeleteHabit(id string) error {
	habits := c.Habits()
	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return fmt.Errorf("habit not found: %s", id)
	}
	return c.SaveHabits(kept)
}

// ToggleHabit flips a habit's completion mark for the given date key. The
// flip is idempotent in pairs: toggling twice restores the original history
// (a cleared mark is removed from the map, not stored as false).
func (c *Collections) ToggleHabit(id, dateKey string) (bool, error) {
	habits := c.Habits()
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		if habits[i].History == nil {
			habits[i].History = map[string]bool{}
		}
		var nowDone bool
		if habits[i].History[dateKey] {
			delete(habits[i].History, dateKey)
		} else {
			habits[i].History[dateKey] = true
			nowDone = true
		}
		return nowDone, c.SaveHabits(habits)
	}
	return false, fmt.Errorf("habit not found: %s", id)
}

// --- Schedule ---

func (c *Collections) Schedule() models.ScheduleData {
	return load(c, constants.BaseKeySchedule, models.ScheduleData{})
}

func (c *Collections) SaveSchedule(data models.ScheduleData) error {
	return save(c, constants.BaseKeySchedule, data)
}

// UpsertScheduleItem applies updates to the item at (dateKey, hour),
// creating the slot lazily on first edit. Exactly one item per hour per date
// is maintained here; the store itself does not enforce it.
func (c *Collections) UpsertScheduleItem(dateKey, todayKey string, hour int, mutate func(*models.ScheduleItem)) error {
	if utils.IsPast(dateKey, todayKey) {
		return ErrPastReadOnly
	}
	data := c.Schedule()
	items := data[dateKey]
	idx := -1
	for i := range items {
		if items[i].Hour == hour {
			idx = i
			break
		}
	}
	if idx < 0 {
		items = append(items, models.ScheduleItem{
			ID:       uuid.New().String(),
			Hour:     hour,
			Category: constants.ScheduleOther,
		})
		idx = len(items) - 1
	}
	mutate(&items[idx])
	items[idx].Hour = hour
	data[dateKey] = items
	return c.SaveSchedule(data)
}

// ReplaceDay replaces the entire collection for one date, used after a
// successful AI generation. Nothing is merged.
func (c *Collections) ReplaceDay(dateKey, todayKey string, items []models.ScheduleItem) error {
	if utils.IsPast(dateKey, todayKey) {
		return ErrPastReadOnly
	}
	data := c.Schedule()
	data[dateKey] = items
	return c.SaveSchedule(data)
}

// --- Life events ---

func (c *Collections) Events() []models.LifeEvent {
	return load(c, constants.BaseKeyEvents, []models.LifeEvent{})
}

func (c *Collections) SaveEvents(events []models.LifeEvent) error {
	return save(c, constants.BaseKeyEvents, events)
}

func (c *Collections) AddEvent(e models.LifeEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return c.SaveEvents(append(c.Events(), e))
}

func (c *Collections) DeleteEvent(id string) error {
	events := c.Events()
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return fmt.Errorf("event not found: %s", id)
	}
	return c.SaveEvents(kept)
}

// --- Vision board ---

func (c *Collections) Visions() []models.VisionItem {
	return load(c, constants.BaseKeyVisions, []models.VisionItem{})
}

func (c *Collections) SaveVisions(visions []models.VisionItem) error {
	return save(c, constants.BaseKeyVisions, visions)
}

// AddVision appends a vision item at the end of its (category, day) bucket.
func (c *Collections) AddVision(v models.VisionItem) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	visions := c.Visions()
	maxRank := -1
	for _, existing := range visions {
		if existing.Category == v.Category && existing.Day == v.Day && existing.Rank > maxRank {
			maxRank = existing.Rank
		}
	}
	v.Rank = maxRank + 1
	return c.SaveVisions(append(visions, v))
}

// MoveVision shifts an item up (delta < 0) or down (delta > 0) within its
// bucket and renumbers the bucket's ranks contiguously from zero.
func (c *Collections) MoveVision(id string, delta int) error {
	visions := c.Visions()
	var target *models.VisionItem
	for i := range visions {
		if visions[i].ID == id {
			target = &visions[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("vision item not found: %s", id)
	}

	bucket := make([]*models.VisionItem, 0)
	for i := range visions {
		if visions[i].Category == target.Category && visions[i].Day == target.Day {
			bucket = append(bucket, &visions[i])
		}
	}
	sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Rank < bucket[j].Rank })

	pos := 0
	for i, item := range bucket {
		if item.ID == id {
			pos = i
			break
		}
	}
	next := pos + delta
	if next < 0 {
		next = 0
	}
	if next > len(bucket)-1 {
		next = len(bucket) - 1
	}
	item := bucket[pos]
	bucket = append(bucket[:pos], bucket[pos+1:]...)
	bucket = append(bucket[:next], append([]*models.VisionItem{item}, bucket[next:]...)...)
	for i, it := range bucket {
		it.Rank = i
	}
	return c.SaveVisions(visions)
}

func (c *Collections) DeleteVision(id string) error {
	visions := c.Visions()
	kept := visions[:0]
	for _, v := range visions {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(visions) {
		return fmt.Errorf("vision item not found: %s", id)
	}
	return c.SaveVisions(kept)
}

// --- Notes ---

func (c *Collections) Notes() []models.Note {
	return load(c, constants.BaseKeyNotes, []models.Note{})
}

func (c *Collections) SaveNotes(notes []models.Note) error {
	return save(c, constants.BaseKeyNotes, notes)
}

// AddNote prepends so the newest note is first.
func (c *Collections) AddNote(content string, urgent bool, now time.Time) (models.Note, error) {
	n := models.Note{
		ID:        uuid.New().String(),
		Content:   content,
		IsUrgent:  urgent,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	return n, c.SaveNotes(append([]models.Note{n}, c.Notes()...))
}

func (c *Collections) DeleteNote(id string) error {
	notes := c.Notes()
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return fmt.Errorf("note not found: %s", id)
	}
	return c.SaveNotes(kept)
}

// --- Journal ---

func (c *Collections) Journal() []models.JournalEntry {
	return load(c, constants.BaseKeyJournal, []models.JournalEntry{})
}

func (c *Collections) SaveJournal(entries []models.JournalEntry) error {
	return save(c, constants.BaseKeyJournal, entries)
}

// WriteJournal upserts the entry for a date. Writing empty content deletes
// the entry outright rather than keeping a blank record.
func (c *Collections) WriteJournal(dateKey, content string, now time.Time) error {
	entries := c.Journal()

	if strings.TrimSpace(content) == "" {
		kept := entries[:0]
		for _, e := range entries {
			if e.Date != dateKey {
				kept = append(kept, e)
			}
		}
		return c.SaveJournal(kept)
	}

	stamp := now.UTC().Format(time.RFC3339)
	for i := range entries {
		if entries[i].Date == dateKey {
			entries[i].Content = content
			entries[i].LastUpdated = stamp
			return c.SaveJournal(entries)
		}
	}
	return c.SaveJournal(append(entries, models.JournalEntry{
		ID:          uuid.New().String(),
		Date:        dateKey,
		Content:     content,
		LastUpdated: stamp,
	}))
}

// JournalFor returns the entry for a date, if any.
func (c *Collections) JournalFor(dateKey string) (models.JournalEntry, bool) {
	for _, e := range c.Journal() {
		if e.Date == dateKey {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// --- Widget order ---

func (c *Collections) WidgetOrder() []string {
	order := load(c, constants.BaseKeyWidgetOrder, []string{})
	if len(order) == 0 {
		return constants.DefaultWidgetOrder()
	}
	return order
}

func (c *Collections) SaveWidgetOrder(order []string) error {
	return save(c, constants.BaseKeyWidgetOrder, order)
}
