// Package table implements the scan pipeline core: schema inference from a
// header row, all-or-nothing row validation against the inferred schema, and
// presentation of the accepted rows with type-derived display headers.
package table

// ColumnType is a closed variant over the types a field token can classify
// to. The zero value is Null.
type ColumnType int

const (
	Null ColumnType = iota
	String
	Int
	Float
	Bool
)

// String returns the type name used for display headers.
func (t ColumnType) String() string {
	switch t {
	case Null:
		return "Null"
	case String:
		return "String"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Schema is the ordered sequence of column types inferred from the header
// row, one per column. Derived once per run and never mutated; it is the
// single source of truth for all subsequent validation.
type Schema []ColumnType

// Warning identifies a rejected data row and, where applicable, the 1-based
// column that failed. Err is one of the errors package sentinels.
type Warning struct {
	Row     int    // 1-based data row index (header row excluded)
	Column  int    // 1-based column index, 0 when not applicable
	Err     error  // sentinel: ErrColumnCountMismatch or ErrFieldTypeMismatch
	Message string // human-readable text naming the row and column
}

// Outcome aggregates validation over all data rows of a run.
type Outcome struct {
	// Accepted holds the tokenized fields of every accepted row, in input
	// order. Order is display-significant.
	Accepted [][]string

	// Warnings holds one entry per rejected row.
	Warnings []Warning

	// HasErrors is true if any row was rejected for any reason.
	HasErrors bool
}

// Renderable reports whether the run may produce table output. A single
// rejected row, or an empty accepted set, suppresses the entire table:
// a schema violation marks the whole snapshot as suspect, so nothing is
// rendered rather than silently hiding bad rows. Deliberate policy; do not
// relax to per-row filtering.
func (o Outcome) Renderable() bool {
	return !o.HasErrors && len(o.Accepted) > 0
}
