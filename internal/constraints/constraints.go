// Package constraints defines the numeric type sets used by the library's generic code.
package constraints

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Integer interface {
	Int | UInt
}

type Number interface {
	Int | UInt | Float
}
