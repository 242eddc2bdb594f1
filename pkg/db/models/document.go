package models

import "time"

// Document stores one domain table as a whole JSON body keyed by name.
type Document struct {
	Name      string    `gorm:"type:varchar(64);primaryKey"`
	Body      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
