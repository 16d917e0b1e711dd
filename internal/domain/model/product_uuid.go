package model

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidProductUUID = errors.New("invalid uuid format")

// ProductUUIDは商品の主キー。16byteで保存し、JSONでは32桁の小文字hexで出す。
type ProductUUID [16]byte

// NewProductUUID generates a random (v4) identifier.
func NewProductUUID() ProductUUID {
	return ProductUUID(uuid.New())
}

// ParseProductUUID accepts hex with or without dashes. Anything not decoding to 16 bytes is rejected.
func ParseProductUUID(s string) (ProductUUID, error) {
	raw, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if err != nil || len(raw) != 16 {
		return ProductUUID{}, fmt.Errorf("%w: %q", ErrInvalidProductUUID, s)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return ProductUUID{}, fmt.Errorf("%w: %q", ErrInvalidProductUUID, s)
	}
	return ProductUUID(u), nil
}

// ParseProductUUIDs parses every element or fails on the first malformed one.
func ParseProductUUIDs(list []string) ([]ProductUUID, error) {
	out := make([]ProductUUID, 0, len(list))
	for _, s := range list {
		id, err := ParseProductUUID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (u ProductUUID) String() string {
	return hex.EncodeToString(u[:])
}

func (u ProductUUID) IsZero() bool {
	return u == ProductUUID{}
}

func (u ProductUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *ProductUUID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidProductUUID
	}
	parsed, err := ParseProductUUID(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Value stores the id in a postgres uuid column.
func (u ProductUUID) Value() (driver.Value, error) {
	return uuid.UUID(u).String(), nil
}

func (u *ProductUUID) Scan(src any) error {
	var id uuid.UUID
	if err := id.Scan(src); err != nil {
		return err
	}
	*u = ProductUUID(id)
	return nil
}

func (ProductUUID) GormDataType() string {
	return "uuid"
}
