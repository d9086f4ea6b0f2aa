package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCollectionName is the fallback auto-collection.
const DefaultCollectionName = "General"

// MaxCollectionNameLen bounds collection names.
const MaxCollectionNameLen = 100

// Collection groups saved items. ItemCount is derived on read.
type Collection struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsAuto    bool
	CreatedAt time.Time
	ItemCount int
}
