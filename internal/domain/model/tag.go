package model

import "time"

type Tag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_name" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 一覧表示用
type TagShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (t Tag) Short() TagShort {
	return TagShort{ID: t.ID, Name: t.Name}
}
