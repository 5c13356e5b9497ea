package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the canonical textual form of timestamp values
const TimeLayout = "2006-01-02 15:04:05"

// NullText is the rendered form of a null value
const NullText = "NULL"

// Kind identifies which member of the value union a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindTime
	KindBool
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "timestamp"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single cell or document field. The zero Value is null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	t    time.Time
	b    bool
}

// Null returns the null value
func Null() Value { return Value{} }

// Int wraps an integer
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float wraps a floating-point number
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string
func String(v string) Value { return Value{kind: KindString, s: v} }

// Time wraps a timestamp
func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// Bool wraps a boolean
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// FromAny converts a driver or document value into the union. Types outside
// the union fall back to their fmt representation.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		if x == nil {
			return Null()
		}
		return String(string(x))
	case time.Time:
		return Time(x)
	case *time.Time:
		if x == nil {
			return Null()
		}
		return Time(*x)
	case bool:
		return Bool(x)
	case decimal.Decimal:
		return Float(x.InexactFloat64())
	case decimal.NullDecimal:
		if !x.Valid {
			return Null()
		}
		return Float(x.Decimal.InexactFloat64())
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

// Kind reports which union member v holds
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the canonical textual form used by every renderer
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format(TimeLayout)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return NullText
	}
}

// Interface returns the underlying Go value, nil for null.
// Timestamps are returned in their canonical textual form.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format(TimeLayout)
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// AsInt returns the integer held by v. Floats are truncated and numeric
// strings parsed; anything else reports false.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		return int64(v.f), true
	case KindString:
		n, err := strconv.ParseInt(v.s, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
