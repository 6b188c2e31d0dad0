package domain

import "time"

type Category struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order" gorm:"index"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
