package filter

import (
	"cmp"
	"time"
)

type keyKind uint8

const (
	keyNull keyKind = iota
	keyString
	keyNumber
	keyTime
)

// Key is a sortable value produced by a sort-key extractor. The zero Key is
// Null; null keys always sort after non-null keys regardless of direction.
type Key struct {
	kind keyKind
	str  string
	num  float64
	at   time.Time
}

// Null is the missing-key value.
var Null = Key{}

func String(s string) Key {
	return Key{kind: keyString, str: s}
}

func Number(n float64) Key {
	return Key{kind: keyNumber, num: n}
}

func Time(t time.Time) Key {
	return Key{kind: keyTime, at: t}
}

// TimeOf returns Null for a nil time.
func TimeOf(t *time.Time) Key {
	if t == nil {
		return Null
	}
	return Time(*t)
}

func (k Key) IsNull() bool {
	return k.kind == keyNull
}

// Compare orders two non-null keys. Keys of different kinds are ordered by
// kind so a mixed extractor still yields a total order.
func (k Key) Compare(other Key) int {
	if k.kind != other.kind {
		return cmp.Compare(k.kind, other.kind)
	}
	switch k.kind {
	case keyNull:
		return 0
	case keyString:
		return cmp.Compare(k.str, other.str)
	case keyNumber:
		return cmp.Compare(k.num, other.num)
	case keyTime:
		return k.at.Compare(other.at)
	default:
		panic("filter: unknown key kind")
	}
}
