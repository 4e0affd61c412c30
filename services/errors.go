package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors the controllers translate into status codes. Services never
// leak gorm or driver errors upward.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("invalid reference")
)

// translate maps a write error into a sentinel. The string checks cover
// drivers that predate gorm's error translation.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key value") {
		return ErrDuplicate
	}
	if strings.Contains(msg, "violates foreign key constraint") {
		return ErrForeignKey
	}
	return err
}
