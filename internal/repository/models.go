package repository

import "time"

// Receipt is a stored receipt record. ID only orders rows by insertion;
// ReceiptID is the business identifier and is not unique.
type Receipt struct {
	ID            uint      `gorm:"primaryKey"`
	ReceiptID     string    `gorm:"size:16;index;not null"`
	TxHash        string    `gorm:"size:66;not null"` // 0x + 64 hex chars
	Amount        string    `gorm:"size:100;not null"` // "<number> <symbol>"
	Date          string    `gorm:"size:32;not null"`
	CustomerName  string    `gorm:"size:255;not null"`
	CustomerEmail string    `gorm:"size:255;not null"`
	Purpose       string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"not null;index"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255)"`
}
