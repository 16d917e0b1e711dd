package model

import (
	"fmt"
	"time"
)

type ProductStatus int

const (
	// 判定用のデフォルト値。更新先としては使えない。
	ProductStatusUnspecified ProductStatus = 0
	ProductStatusDraft       ProductStatus = 1
	ProductStatusPublished   ProductStatus = 2
	ProductStatusArchived    ProductStatus = 3
)

func (s ProductStatus) Valid() bool {
	return s >= ProductStatusUnspecified && s <= ProductStatusArchived
}

// Assignable reports whether s may be persisted through a mutation.
func (s ProductStatus) Assignable() bool {
	return s >= ProductStatusDraft && s <= ProductStatusArchived
}

func (s ProductStatus) String() string {
	switch s {
	case ProductStatusUnspecified:
		return "unspecified"
	case ProductStatusDraft:
		return "draft"
	case ProductStatusPublished:
		return "published"
	case ProductStatusArchived:
		return "archived"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Priceは最小通貨単位（セント等）
type Product struct {
	UUID        ProductUUID   `gorm:"primaryKey;type:uuid;column:uuid" json:"uuid"`
	Status      ProductStatus `gorm:"type:smallint;not null;default:1;index" json:"status"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string        `gorm:"type:varchar(255);not null;index" json:"slug"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Price       int64         `gorm:"not null;check:chk_products_price,price >= 0" json:"price"`
	BrandID     *int64        `gorm:"index" json:"brandId"`
	Brand       *Brand        `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL" json:"brand"`
	Categories  []Category    `gorm:"many2many:product_categories;joinForeignKey:ProductUUID;joinReferences:CategoryID;constraint:OnDelete:CASCADE" json:"categories"`
	Tags        []Tag         `gorm:"many2many:product_tags;joinForeignKey:ProductUUID;joinReferences:TagID;constraint:OnDelete:CASCADE" json:"tags"`
	Stocks      []Stock       `gorm:"foreignKey:ProductUUID;references:UUID" json:"-"`
	CreatedAt   time.Time     `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// ProductShortはネストしたコレクションを持たない
type ProductShort struct {
	UUID        ProductUUID   `json:"uuid"`
	Status      ProductStatus `json:"status"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	BrandID     *int64        `json:"brandId"`
}

func (p Product) Short() ProductShort {
	return ProductShort{
		UUID:        p.UUID,
		Status:      p.Status,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		BrandID:     p.BrandID,
	}
}

// HasCategory reports membership of categoryID in the loaded categories.
func (p Product) HasCategory(categoryID int64) bool {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// WithoutCategory returns the loaded categories minus categoryID.
func (p Product) WithoutCategory(categoryID int64) []Category {
	out := make([]Category, 0, len(p.Categories))
	for _, c := range p.Categories {
		if c.ID != categoryID {
			out = append(out, c)
		}
	}
	return out
}
