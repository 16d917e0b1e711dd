package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

const (
	MinNameLength = 3
	MaxNameLength = 255

	// 1リクエストで渡せるidの上限
	MaxFilterIDs = 100

	// タグ名の一括チェック上限
	MaxCheckNames = 100
)

// 小文字英数字をハイフン1つで連結。先頭と末尾のハイフンは不可
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Message strips the sentinel prefix so the text can be shown to API consumers.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
}

// 名前は前後の空白を除いて3〜255文字
func ValidateName(field, name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < MinNameLength || n > MaxNameLength {
		return invalid("%s must be between %d and %d characters", field, MinNameLength, MaxNameLength)
	}
	return nil
}

// NormalizeSlug lowercases the slug. It does not repair invalid characters.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// ValidateSlug checks an already normalized slug.
func ValidateSlug(slug string) error {
	if n := len(slug); n < MinNameLength || n > MaxNameLength {
		return invalid("slug must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
	if !slugPattern.MatchString(slug) {
		return invalid("slug must contain only lowercase letters, digits and single hyphens")
	}
	return nil
}

func ValidateID(field string, id int64) error {
	if id < 1 {
		return invalid("%s must be at least 1", field)
	}
	return nil
}

// 絞り込み用のid配列。最大100件、各要素は1以上
func ValidateIDs(field string, ids []int64) error {
	if len(ids) > MaxFilterIDs {
		return invalid("%s cannot contain more than %d values", field, MaxFilterIDs)
	}
	for _, id := range ids {
		if id < 1 {
			return invalid("%s must contain only positive ids", field)
		}
	}
	return nil
}

func ValidateNotEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func ValidatePrice(price int64) error {
	if price < 0 {
		return invalid("price must be >= 0")
	}
	return nil
}

func ValidateCheckNames(names []string) error {
	if len(names) == 0 {
		return invalid("name must contain at least one value")
	}
	if len(names) > MaxCheckNames {
		return invalid("name cannot contain more than %d values", MaxCheckNames)
	}
	return nil
}
