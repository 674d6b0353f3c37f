package dbmysql

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"column:image_url;size:512" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
