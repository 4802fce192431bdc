package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/models"
)

func newTestStore(t *testing.T) kv.Store {
	t.Helper()
	store := kv.NewJSONStore(filepath.Join(t.TempDir(), "habito.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return store
}

func TestKeyNamespacing(t *testing.T) {
	tests := []struct {
		owner string
		base  string
		want  string
	}{
		{"9876543210", constants.BaseKeyHabits, "user_9876543210_habito_habits"},
		{"", constants.BaseKeyHabits, "guest_habito_habits"},
		{"guest", constants.BaseKeyNotes, "guest_habito_notes"},
	}
	for _, tt := range tests {
		if got := Key(tt.owner, tt.base); got != tt.want {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.owner, tt.base, got, tt.want)
		}
	}
}

func TestHabitsRoundTrip(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")

	if got := col.Habits(); len(got) != 0 {
		t.Fatalf("expected empty default, got %d habits", len(got))
	}

	err := col.AddHabit(models.Habit{
		Name:      "Read",
		Icon:      models.IconBook,
		Color:     "#8b5cf6",
		Category:  constants.HabitProductivity,
		Frequency: []time.Weekday{time.Monday, time.Wednesday},
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	habits := col.Habits()
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	if habits[0].ID == "" {
		t.Error("expected generated id")
	}
	if habits[0].History == nil {
		t.Error("expected non-nil history")
	}
}

func TestCorruptCollectionReturnsDefault(t *testing.T) {
	store := newTestStore(t)
	col := ForOwner(store, "9876543210")

	if err := store.Set(Key("9876543210", constants.BaseKeyHabits), "{broken"); err != nil {
		t.Fatal(err)
	}
	if got := col.Habits(); len(got) != 0 {
		t.Errorf("expected empty default on corrupt data, got %d", len(got))
	}
}

func TestOwnerIsolation(t *testing.T) {
	store := newTestStore(t)
	a := ForOwner(store, "9876543210")
	b := ForOwner(store, "9123456789")

	if err := a.AddHabit(models.Habit{Name: "Run"}); err != nil {
		t.Fatal(err)
	}
	if got := b.Habits(); len(got) != 0 {
		t.Errorf("owner b sees owner a's habits: %d", len(got))
	}
}

func TestToggleHabitIsIdempotentInPairs(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	if err := col.AddHabit(models.Habit{Name: "Meditate"}); err != nil {
		t.Fatal(err)
	}
	id := col.Habits()[0].ID

	done, err := col.ToggleHabit(id, "2026-08-30")
	if err != nil || !done {
		t.Fatalf("first toggle: done=%v err=%v", done, err)
	}
	done, err = col.ToggleHabit(id, "2026-08-30")
	if err != nil || done {
		t.Fatalf("second toggle: done=%v err=%v", done, err)
	}

	// A cleared mark is removed, not stored as false.
	h := col.Habits()[0]
	if _, present := h.History["2026-08-30"]; present {
		t.Error("cleared date still present in history")
	}
}

func TestToggleHabitUnknownID(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	if _, err := col.ToggleHabit("nope", "2026-08-30"); err == nil {
		t.Error("expected error for unknown habit")
	}
}

func TestUpsertScheduleItemByHour(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	today := "2026-08-30"

	err := col.UpsertScheduleItem(today, today, 9, func(it *models.ScheduleItem) {
		it.Activity = "Deep work"
		it.Category = constants.ScheduleFocus
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Editing the same hour updates in place, never duplicates.
	err = col.UpsertScheduleItem(today, today, 9, func(it *models.ScheduleItem) {
		it.Completed = true
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	items := col.Schedule()[today]
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Activity != "Deep work" || !items[0].Completed {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestPastDaysAreReadOnly(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")

	err := col.UpsertScheduleItem("2026-08-29", "2026-08-30", 9, func(it *models.ScheduleItem) {
		it.Activity = "Too late"
	})
	if err != ErrPastReadOnly {
		t.Errorf("expected ErrPastReadOnly, got %v", err)
	}

	if err := col.ReplaceDay("2026-08-29", "2026-08-30", nil); err != ErrPastReadOnly {
		t.Errorf("ReplaceDay: expected ErrPastReadOnly, got %v", err)
	}
}

func TestReplaceDay(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	today := "2026-08-30"

	err := col.UpsertScheduleItem(today, today, 9, func(it *models.ScheduleItem) {
		it.Activity = "Old plan"
	})
	if err != nil {
		t.Fatal(err)
	}

	fresh := []models.ScheduleItem{
		{ID: "a", Hour: 8, Activity: "New plan", Category: constants.ScheduleWork},
	}
	if err := col.ReplaceDay(today, today, fresh); err != nil {
		t.Fatal(err)
	}

	items := col.Schedule()[today]
	if len(items) != 1 || items[0].Activity != "New plan" {
		t.Errorf("day not replaced: %+v", items)
	}
}

func TestNotesPrependNewestFirst(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	now := time.Now()

	if _, err := col.AddNote("first", false, now); err != nil {
		t.Fatal(err)
	}
	if _, err := col.AddNote("second", true, now); err != nil {
		t.Fatal(err)
	}

	notes := col.Notes()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Content != "second" {
		t.Errorf("newest note should be first, got %q", notes[0].Content)
	}
	if !notes[0].IsUrgent {
		t.Error("urgent flag lost")
	}
}

func TestWriteJournalUpsertAndClear(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	now := time.Now()

	if err := col.WriteJournal("2026-08-30", "draft", now); err != nil {
		t.Fatal(err)
	}
	if err := col.WriteJournal("2026-08-30", "final", now); err != nil {
		t.Fatal(err)
	}

	entries := col.Journal()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after upsert, got %d", len(entries))
	}
	if entries[0].Content != "final" {
		t.Errorf("content = %q, want final", entries[0].Content)
	}

	// Empty content deletes the entry outright.
	if err := col.WriteJournal("2026-08-30", "  ", now); err != nil {
		t.Fatal(err)
	}
	if entries := col.Journal(); len(entries) != 0 {
		t.Errorf("expected entry removed, got %d", len(entries))
	}
}

func TestVisionRanks(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")

	for _, text := range []string{"one", "two", "three"} {
		if err := col.AddVision(models.VisionItem{Text: text, Category: constants.VisionDaily}); err != nil {
			t.Fatal(err)
		}
	}
	// A different bucket ranks independently.
	if err := col.AddVision(models.VisionItem{Text: "weekly", Category: constants.VisionWeekly, Day: "Mon"}); err != nil {
		t.Fatal(err)
	}

	visions := col.Visions()
	ranks := map[string]int{}
	for _, v := range visions {
		ranks[v.Text] = v.Rank
	}
	if ranks["one"] != 0 || ranks["two"] != 1 || ranks["three"] != 2 {
		t.Errorf("daily ranks wrong: %v", ranks)
	}
	if ranks["weekly"] != 0 {
		t.Errorf("weekly bucket should start at 0, got %d", ranks["weekly"])
	}

	// Move "three" up one slot.
	var threeID string
	for _, v := range visions {
		if v.Text == "three" {
			threeID = v.ID
		}
	}
	if err := col.MoveVision(threeID, -1); err != nil {
		t.Fatal(err)
	}
	ranks = map[string]int{}
	for _, v := range col.Visions() {
		ranks[v.Text] = v.Rank
	}
	if ranks["one"] != 0 || ranks["three"] != 1 || ranks["two"] != 2 {
		t.Errorf("ranks after move: %v", ranks)
	}
}

func TestMoveVisionClampsAtEdges(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")
	if err := col.AddVision(models.VisionItem{Text: "only", Category: constants.VisionDaily}); err != nil {
		t.Fatal(err)
	}
	id := col.Visions()[0].ID
	if err := col.MoveVision(id, -1); err != nil {
		t.Errorf("moving up at top should clamp, got %v", err)
	}
	if err := col.MoveVision(id, 1); err != nil {
		t.Errorf("moving down at bottom should clamp, got %v", err)
	}
	if got := col.Visions()[0].Rank; got != 0 {
		t.Errorf("rank = %d, want 0", got)
	}
}

func TestWidgetOrderDefault(t *testing.T) {
	col := ForOwner(newTestStore(t), "9876543210")

	order := col.WidgetOrder()
	want := constants.DefaultWidgetOrder()
	if len(order) != len(want) {
		t.Fatalf("default order length %d, want %d", len(order), len(want))
	}

	if err := col.SaveWidgetOrder([]string{"habits", "summary"}); err != nil {
		t.Fatal(err)
	}
	order = col.WidgetOrder()
	if order[0] != "habits" || order[1] != "summary" {
		t.Errorf("saved order not returned: %v", order)
	}
}

func TestCopyAndDeleteOwner(t *testing.T) {
	store := newTestStore(t)
	oldCol := ForOwner(store, "9876543210")

	if err := oldCol.AddHabit(models.Habit{Name: "Run"}); err != nil {
		t.Fatal(err)
	}
	if _, err := oldCol.AddNote("remember", false, time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := CopyOwner(store, "9876543210", "9123456789"); err != nil {
		t.Fatalf("copy failed: %v", err)
	}

	newCol := ForOwner(store, "9123456789")
	if got := newCol.Habits(); len(got) != 1 || got[0].Name != "Run" {
		t.Errorf("habits not copied: %+v", got)
	}
	if got := newCol.Notes(); len(got) != 1 {
		t.Errorf("notes not copied: %+v", got)
	}

	// The old namespace survives the copy, then DeleteOwner clears it.
	if got := oldCol.Habits(); len(got) != 1 {
		t.Error("old namespace clobbered by copy")
	}
	DeleteOwner(store, "9876543210")
	if got := oldCol.Habits(); len(got) != 0 {
		t.Errorf("old namespace not cleared: %+v", got)
	}
	if got := newCol.Habits(); len(got) != 1 {
		t.Error("delete removed the new namespace too")
	}
}
