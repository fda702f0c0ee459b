package model

import (
	"time"

	"gorm.io/datatypes"
)

type Store struct {
	Id          int                         `gorm:"primaryKey;autoIncrement"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Icon        string                      `gorm:"type:varchar(64);not null;default:'Store'"`
	ThemeColor  string                      `gorm:"type:varchar(16);not null;default:'#3b82f6'"`
	Description string                      `gorm:"type:text;not null"`
	Categories  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (Store) TableName() string {
	return "stores"
}
