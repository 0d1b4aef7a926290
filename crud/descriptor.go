package crud

import (
	"folio/filemgr"

	"go.mongodb.org/mongo-driver/mongo"
)

type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindDate
	KindStringList
)

// Field describes one schema field of an entity.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Min/Max bound a KindInt field inclusively; both zero means unbounded.
	Min, Max int
	// DefaultNow stamps an absent KindDate field with the creation time.
	DefaultNow bool
}

// Descriptor drives the generic CRUD engine for one entity. The six
// portfolio entities differ only in this table plus their model type.
type Descriptor struct {
	// Name labels the entity in cache keys and client-facing messages,
	// e.g. "Blog".
	Name       string
	Collection *mongo.Collection
	Fields     []Field
	// ImageField names the one field that is always overwritten on update
	// (uploaded file wins, else payload value, else empty). Empty string
	// means the entity carries no image.
	ImageField string
	Entity     filemgr.EntityType
}
