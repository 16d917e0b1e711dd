package model

import "time"

type Brand struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_brands_name" json:"name"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_brands_slug" json:"slug"`
	IsActive  bool      `gorm:"not null;default:false" json:"isActive"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

type BrandShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (b Brand) Short() BrandShort {
	return BrandShort{ID: b.ID, Name: b.Name, Slug: b.Slug}
}
