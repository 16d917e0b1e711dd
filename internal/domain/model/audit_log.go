package model

import (
	"time"

	"gorm.io/datatypes"
)

// バッチ操作の種類
type AuditAction string

const (
	AuditActionUpdateStatus    AuditAction = "UPDATE_STATUS"
	AuditActionUpdatePrice     AuditAction = "UPDATE_PRICE"
	AuditActionUpdateStock     AuditAction = "UPDATE_STOCK"
	AuditActionDeleteStock     AuditAction = "DELETE_STOCK"
	AuditActionToggleCategory  AuditAction = "TOGGLE_CATEGORY"
	AuditActionDetachCategory  AuditAction = "DETACH_CATEGORY"
	AuditActionUpdateOrderSort AuditAction = "UPDATE_ORDER_SORT"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceProduct  AuditResourceType = "product"
	AuditResourceCategory AuditResourceType = "category"
	AuditResourceStock    AuditResourceType = "stock"
)

// AuditLog records one applied item of a batch operator.
// ResourceID is the product hex uuid or the decimal category id.
type AuditLog struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resourceType"`
	ResourceID   string            `gorm:"type:varchar(64);not null;index" json:"resourceId"`

	// 適用後の値(JSON)
	After     datatypes.JSON `gorm:"type:jsonb" json:"after"`
	RequestID string         `gorm:"type:varchar(64)" json:"requestId"`
	CreatedAt time.Time      `gorm:"not null;index" json:"createdAt"`
}
