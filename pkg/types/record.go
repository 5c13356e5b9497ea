package types

// Field is one key/value pair of a Record
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered set of unique keys mapped to values. Iteration
// follows insertion order.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord creates an empty record
func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value Value) *Record {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return r
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
	return r
}

// Get returns the value stored under key
func (r *Record) Get(key string) (Value, bool) {
	i, ok := r.index[key]
	if !ok {
		return Null(), false
	}
	return r.fields[i].Value, true
}

// Len returns the number of fields
func (r *Record) Len() int { return len(r.fields) }

// Keys returns the keys in insertion order
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in insertion order
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Each calls fn for every field in insertion order
func (r *Record) Each(fn func(key string, value Value)) {
	for _, f := range r.fields {
		fn(f.Key, f.Value)
	}
}
