package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	Id             int                                   `gorm:"primaryKey;autoIncrement"`
	Name           string                                `gorm:"type:varchar(255);not null;index"`
	Price          float64                               `gorm:"type:decimal(10,2);not null"`
	Description    string                                `gorm:"type:text"`
	Images         datatypes.JSONSlice[string]           `gorm:"type:jsonb"`
	Category       string                                `gorm:"type:varchar(128);index"`
	Stock          int                                   `gorm:"not null;default:0"`
	Rating         float64                               `gorm:"type:decimal(2,1);not null;default:0"`
	Specifications datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	StoreId        int                                   `gorm:"not null;index"`
	Store          *Store                                `gorm:"foreignKey:StoreId"`
	CreatedAt      time.Time                             `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                             `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
