package dbmysql

import "time"

// Message rows are append-only; nothing in the application deletes them.
type Message struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	SenderID   uint64    `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
