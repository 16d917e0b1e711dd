package model

import "time"

const DefaultCategoryOrderSort = 500

// ParentIDは同じテーブルへの参照。自分自身はCHECK制約で禁止。
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID  *int64    `gorm:"index;check:chk_categories_parent,parent_id <> id" json:"parentId"`
	Parent    *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_slug" json:"slug"`
	IsActive  bool      `gorm:"not null;default:false" json:"isActive"`
	OrderSort int       `gorm:"not null;default:500" json:"orderSort"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

type CategoryShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (c Category) Short() CategoryShort {
	return CategoryShort{ID: c.ID, Name: c.Name, Slug: c.Slug}
}
