package dbmysql

import "time"

type Comment struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index" json:"post_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
