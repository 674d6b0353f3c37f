package dbmysql

import "time"

// Like rows are unique per (user, post); the composite index is what makes
// concurrent duplicate likes collapse into a single row.
type Like struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
