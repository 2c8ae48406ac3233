package flow

// Payload is the one-or-many value passed between pipeline stages. A
// stage may emit a single item or a batch; Payload makes the shape
// explicit instead of type-testing at every call site.
type Payload struct {
	items []any
	list  bool
}

// Item wraps a single item.
func Item(v any) Payload {
	return Payload{items: []any{v}}
}

// List wraps a batch of items.
func List(vs []any) Payload {
	return Payload{items: vs, list: true}
}

// Items returns the normalized item slice.
func (p Payload) Items() []any { return p.items }

// Len returns the number of items.
func (p Payload) Len() int { return len(p.items) }

// IsList reports whether the payload is an explicit batch.
func (p Payload) IsList() bool { return p.list }

// Single returns the sole item. It reports false when the payload does
// not hold exactly one item.
func (p Payload) Single() (any, bool) {
	if len(p.items) == 1 {
		return p.items[0], true
	}
	return nil, false
}

// Flatten collapses a one-element batch back into a single item, the
// inverse of Items on a singleton.
func (p Payload) Flatten() Payload {
	if p.list && len(p.items) == 1 {
		return Item(p.items[0])
	}
	return p
}

// Metadata is a mutable key/value map attached to an item.
type Metadata map[string]any

// MetadataHandler is implemented by items that carry metadata.
type MetadataHandler interface {
	HasMetadata() bool
	Metadata() Metadata
}

// Record is the basic metadata-bearing item: a value plus attached
// metadata. Readers that produce bare values (file paths, strings) skip
// it; filters that need metadata wrap values into Records.
type Record struct {
	Value any
	Meta  Metadata
}

// NewRecord wraps a value with empty metadata.
func NewRecord(value any) *Record {
	return &Record{Value: value, Meta: make(Metadata)}
}

// HasMetadata reports whether any metadata is attached.
func (r *Record) HasMetadata() bool { return len(r.Meta) > 0 }

// Metadata returns the attached metadata, allocating it on first use.
func (r *Record) Metadata() Metadata {
	if r.Meta == nil {
		r.Meta = make(Metadata)
	}
	return r.Meta
}

// ItemMetadata queries an item for metadata. The second return is false
// when the item does not expose any.
func ItemMetadata(item any) (Metadata, bool) {
	mh, ok := item.(MetadataHandler)
	if !ok || !mh.HasMetadata() {
		return nil, false
	}
	return mh.Metadata(), true
}

// ItemValue unwraps a Record to its value and returns any other item
// unchanged.
func ItemValue(item any) any {
	if r, ok := item.(*Record); ok {
		return r.Value
	}
	return item
}
