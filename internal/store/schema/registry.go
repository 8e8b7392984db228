package schema

import "time"

// Registry represents the registries table - tracked component registries
type Registry struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name of the registry
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// URL is the registry catalog or feed URL, unique across registries
	URL string `gorm:"column:url;not null;unique;type:text"`
	// Homepage is the registry's public homepage
	Homepage string `gorm:"column:homepage;type:text"`
	// Description is an optional free-form description
	Description string `gorm:"column:description;type:text"`
	// FeedURL is the discovered RSS/Atom feed URL, empty when none was found
	FeedURL string `gorm:"column:feed_url;type:text"`
	// LastSyncedAt is the timestamp of the last completed sync for this registry
	LastSyncedAt *time.Time `gorm:"column:last_synced_at;type:timestamptz"`
	// ItemCount is the number of feed items currently stored for this registry
	ItemCount int `gorm:"column:item_count;not null;default:0"`
	// CreatedAt is the timestamp when this registry was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this registry was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Registry model
func (Registry) TableName() string {
	return "registries"
}
