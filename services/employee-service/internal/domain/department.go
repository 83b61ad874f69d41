package domain

import "time"

type Department struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100"`
	Description string
	ManagerName string `gorm:"size:100"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
