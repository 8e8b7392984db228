package schema

import "time"

// RSSItem represents the rss_items table - feed items observed for a registry
type RSSItem struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RegistryID is the registry this item belongs to
	RegistryID uint64 `gorm:"column:registry_id;not null;uniqueIndex:idx_rss_items_registry_guid;index"`
	// GUID is the feed-provided unique identifier for the item, falling back
	// to the item link when the feed omits one
	GUID string `gorm:"column:guid;not null;uniqueIndex:idx_rss_items_registry_guid;type:text"`
	// Title is the item headline
	Title string `gorm:"column:title;not null;type:text"`
	// Link is the item URL
	Link string `gorm:"column:link;not null;type:text"`
	// PubDate is the publication timestamp as reported by the feed
	PubDate *time.Time `gorm:"column:pub_date;type:timestamptz"`
	// Description is the item summary, may be empty
	Description string `gorm:"column:description;type:text"`
	// CreatedAt is the timestamp when this item was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RSSItem model
func (RSSItem) TableName() string {
	return "rss_items"
}
