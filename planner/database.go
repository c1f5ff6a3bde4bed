package planner

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Database interface {
	CreateEventRecord(r *EventRecord) error
	GetEventRecord(id uint) (*EventRecord, error)
	GetEventRecordsByChannel(channelID string) ([]*EventRecord, error)
}

// EventRecord is an audit entry for a calendar event the bot created. The
// live planning state itself is never persisted.
type EventRecord struct {
	ID        uint `gorm:"primaryKey"`
	ChannelID string
	Title     string
	StartTime time.Time
	Link      string
	CreatedAt time.Time
}

type DB struct {
	*gorm.DB
}

func NewDB(dsn string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(&EventRecord{})

	return &DB{db}, nil
}

func (db *DB) CreateEventRecord(r *EventRecord) error {
	return db.DB.Create(r).Error
}

func (db *DB) GetEventRecord(id uint) (*EventRecord, error) {
	var r EventRecord
	err := db.DB.First(&r, id).Error
	return &r, err
}

func (db *DB) GetEventRecordsByChannel(channelID string) ([]*EventRecord, error) {
	var records []*EventRecord
	err := db.DB.Where(&EventRecord{ChannelID: channelID}).Find(&records).Error
	return records, err
}
