// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxEntryTitleLength is the maximum allowed length for entry titles.
const MaxEntryTitleLength = 200

// MaxEntryMoodLength is the maximum allowed length for entry moods.
const MaxEntryMoodLength = 50

// Entry represents a diary record for a given date. An entry may have
// financial transactions linked to it.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Title     string
	Content   string
	Mood      string // happy, sad, neutral, excited, tired, etc.
	Photos    []string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntry creates a new Entry entity.
func NewEntry(userID uuid.UUID, date time.Time, title, content, mood string, photos, tags []string) *Entry {
	now := time.Now().UTC()

	if photos == nil {
		photos = []string{}
	}
	if tags == nil {
		tags = []string{}
	}

	return &Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Title:     title,
		Content:   content,
		Mood:      mood,
		Photos:    photos,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntryWithTransactions represents an entry together with its linked transactions.
type EntryWithTransactions struct {
	Entry        *Entry
	Transactions []*Transaction
}

// EntryListResult represents the result of listing entries.
type EntryListResult struct {
	Entries  []*Entry
	Total    int64
	Page     int
	PageSize int
}
