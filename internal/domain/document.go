package domain

// IdentifierField is the reserved storage identifier. It is never part of a
// Document handed to clients.
const IdentifierField = "_id"

// Document is one record of the backing collection: field name to
// JSON-compatible value (string, number, bool, nil, map or slice).
type Document map[string]any

// WithoutIdentifier returns d without the identifier field.
// d itself is modified only when the field is present.
func (d Document) WithoutIdentifier() Document {
	if d == nil {
		return Document{}
	}
	delete(d, IdentifierField)
	return d
}
