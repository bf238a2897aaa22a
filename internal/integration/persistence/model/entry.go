package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

// StringList stores a list of strings as a JSON column. JSON keeps the
// column portable between PostgreSQL and the SQLite test database.
type StringList []string

// Value implements the driver.Valuer interface.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}

// EntryModel represents the entries table in the database.
type EntryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Date      time.Time  `gorm:"type:date;not null;index"`
	Title     string     `gorm:"type:varchar(200)"`
	Content   string     `gorm:"type:text"`
	Mood      string     `gorm:"type:varchar(50)"`
	Photos    StringList `gorm:"type:json"`
	Tags      StringList `gorm:"type:json"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	photos := []string(m.Photos)
	if photos == nil {
		photos = []string{}
	}
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Entry{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		Title:     m.Title,
		Content:   m.Content,
		Mood:      m.Mood,
		Photos:    photos,
		Tags:      tags,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Date:      entry.Date,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Photos:    StringList(entry.Photos),
		Tags:      StringList(entry.Tags),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
