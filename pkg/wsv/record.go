package wsv

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Record is a single data row: a mapping from column name to field value.
//
// A Record contains only the columns actually present in that row. A row
// shorter than the header simply lacks its trailing keys; absent keys are
// distinct from keys holding an empty-string value (written "" in WSV).
//
// The mapping implementation is chosen at Scanner construction time through
// Options.NewRecord, so callers that care about column order can receive
// OrderedRecord values while callers that only look up by name get the
// cheaper MapRecord.
type Record interface {
	// Get returns the value for the named column and whether it is present.
	Get(name string) (string, bool)
	// Set stores a column value. Parsing calls Set once per column, in
	// header order.
	Set(name, value string)
	// Len returns the number of columns present in the record.
	Len() int
	// Columns returns the names of the columns present in the record.
	Columns() []string
	// Map returns the record as a plain map. The map is a copy; modifying
	// it does not affect the record.
	Map() map[string]string
}

// RecordFactory creates an empty Record. It is the constructor-time strategy
// that selects the mapping implementation used for every parsed row.
type RecordFactory func() Record

// MapRecord is the default Record implementation backed by a plain map.
// Columns() returns names in sorted order, not header order.
type MapRecord map[string]string

// NewMapRecord creates an empty MapRecord. It satisfies RecordFactory.
func NewMapRecord() Record {
	return MapRecord{}
}

// Get returns the value for the named column and whether it is present.
func (m MapRecord) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Set stores a column value.
func (m MapRecord) Set(name, value string) {
	m[name] = value
}

// Len returns the number of columns present in the record.
func (m MapRecord) Len() int {
	return len(m)
}

// Columns returns the column names in sorted order.
func (m MapRecord) Columns() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the record as a plain map.
func (m MapRecord) Map() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// OrderedRecord is a Record implementation that preserves column order as
// the columns were set (header order for parsed rows). Its JSON encoding
// keeps that order.
type OrderedRecord struct {
	columns []string
	values  map[string]string
}

// NewOrderedRecord creates an empty OrderedRecord. It satisfies RecordFactory.
func NewOrderedRecord() Record {
	return &OrderedRecord{values: make(map[string]string)}
}

// Get returns the value for the named column and whether it is present.
func (r *OrderedRecord) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set stores a column value, appending the column on first use.
func (r *OrderedRecord) Set(name, value string) {
	if _, ok := r.values[name]; !ok {
		r.columns = append(r.columns, name)
	}
	r.values[name] = value
}

// Len returns the number of columns present in the record.
func (r *OrderedRecord) Len() int {
	return len(r.columns)
}

// Columns returns the column names in insertion order.
// This returns a copy of the column slice.
func (r *OrderedRecord) Columns() []string {
	columns := make([]string, len(r.columns))
	copy(columns, r.columns)
	return columns
}

// Map returns a copy of the record as a plain map.
func (r *OrderedRecord) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the record as a JSON object with keys in column order.
func (r *OrderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
