package view

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// kind ranks values of different types so every pair of values is ordered
type kind int

const (
	kindMissing kind = iota
	kindBool
	kindNumber
	kindString
	kindTime
	kindOther
)

// CompareValues orders two field values. Missing values (ok=false or nil) come first,
// then values are grouped by kind: bool, number, string, time, anything else.
func CompareValues(a interface{}, aok bool, b interface{}, bok bool) int {
	ka, kb := kindOf(a, aok), kindOf(b, bok)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}

	switch ka {
	case kindMissing:
		return 0
	case kindBool:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case kindNumber:
		if c, ok := compareIntegers(a, b); ok {
			return c
		}
		na, _ := ToFloat64(a)
		nb, _ := ToFloat64(b)
		return cmp.Compare(na, nb)
	case kindString:
		return strings.Compare(a.(string), b.(string))
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func kindOf(v interface{}, ok bool) kind {
	if !ok || v == nil {
		return kindMissing
	}
	switch v.(type) {
	case bool:
		return kindBool
	case string:
		return kindString
	case time.Time:
		return kindTime
	}
	if _, isNum := ToFloat64(v); isNum {
		return kindNumber
	}
	return kindOther
}

// compareIntegers orders a and b exactly when both are integers; float64 loses precision above 2^53
func compareIntegers(a, b interface{}) (int, bool) {
	aneg, amag, aok := integerOf(a)
	bneg, bmag, bok := integerOf(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case aneg && !bneg:
		return -1, true
	case !aneg && bneg:
		return 1, true
	case aneg:
		return cmp.Compare(bmag, amag), true
	default:
		return cmp.Compare(amag, bmag), true
	}
}

// integerOf splits an integer value into sign and magnitude
func integerOf(v interface{}) (neg bool, mag uint64, ok bool) {
	var i int64
	switch n := v.(type) {
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint:
		return false, uint64(n), true
	case uint8:
		return false, uint64(n), true
	case uint16:
		return false, uint64(n), true
	case uint32:
		return false, uint64(n), true
	case uint64:
		return false, n, true
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return false, 0, false
		}
		i = parsed
	default:
		return false, 0, false
	}
	if i < 0 {
		return true, uint64(-(i + 1)) + 1, true
	}
	return false, uint64(i), true
}

// ToFloat64 converts numeric types to float64 for comparison
func ToFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
