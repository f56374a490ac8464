package draft

import (
	"time"

	"github.com/google/uuid"
)

// CurrentVersion is stamped on every saved draft. A loaded draft carrying any
// other version is treated as malformed and discarded.
const CurrentVersion = "1.0"

// Draft is one in-progress form section, keyed by (user, section). The Key
// column mirrors the browser build's localStorage key so the two clients stay
// interchangeable on disk format.
type Draft struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_drafts_user_section,priority:1"`
	Section   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_drafts_user_section,priority:2"`
	Data      []byte    `gorm:"type:blob;not null"` // JSON-encoded field values
	Timestamp time.Time `gorm:"not null"`
	Version   string    `gorm:"type:varchar(10);not null"`
}

// TableName specifies the table name for the Draft model.
func (Draft) TableName() string {
	return "form_drafts"
}

// ExpiredAt reports whether the draft is older than maxAge relative to now.
// Expiry is always judged at load time against the wall clock.
func (d *Draft) ExpiredAt(now time.Time, maxAge time.Duration) bool {
	return now.Sub(d.Timestamp) > maxAge
}
