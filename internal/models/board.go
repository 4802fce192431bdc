package models

import "github.com/habito-app/habito/internal/constants"

// LifeEvent is a dated milestone shown on the events timeline. Events are
// added and deleted whole; there is no partial edit flow.
type LifeEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
	Color string `json:"color"`
}

// VisionItem is a vision board entry. Rank orders items within their
// (category, day) bucket; it is persisted explicitly instead of relying on
// array position.
type VisionItem struct {
	ID       string                   `json:"id"`
	Text     string                   `json:"text"`
	Category constants.VisionCategory `json:"category"`
	Day      string                   `json:"day,omitempty"` // weekday abbreviation, WEEKLY category only
	Rank     int                      `json:"rank"`
}

// Note is a quick note, newest first by convention.
type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	IsUrgent  bool   `json:"isUrgent"`
	CreatedAt string `json:"createdAt"` // RFC3339 timestamp
}

// JournalEntry is a per-day journal record; at most one entry exists per
// date key. Clearing the content deletes the entry outright.
type JournalEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated"` // RFC3339 timestamp
}
