package hooks

import (
	"bytes"
	"math"
	"reflect"
	"unsafe"
)

// Same reports whether x and y are the same value for change detection.
//
// Numbers, strings, booleans and byte slices compare by value; NaN is the
// same as NaN. Pointers, maps, channels, functions and other slices compare
// by identity. Structs and arrays compare field by field (element by
// element) under these rules, so a struct holding a slice is the same as a
// copy of itself. Values of different dynamic types are never the same.
func Same(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}

	switch vx.Kind() {
	case reflect.Func:
		return funcPointer(x) == funcPointer(y)
	case reflect.Map:
		return vx.Pointer() == vy.Pointer()
	case reflect.Slice:
		if vx.Type().Elem().Kind() == reflect.Uint8 {
			return bytes.Equal(vx.Bytes(), vy.Bytes())
		}
		return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
	}

	if vx.Comparable() && vy.Comparable() && x == y {
		return true
	}

	switch vx.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(vx.Float()) && math.IsNaN(vy.Float())
	case reflect.Complex64, reflect.Complex128:
		cx, cy := vx.Complex(), vy.Complex()
		return sameFloat(real(cx), real(cy)) && sameFloat(imag(cx), imag(cy))
	case reflect.Struct:
		ax, ay := addressable(vx), addressable(vy)
		for i := 0; i < ax.NumField(); i++ {
			if !Same(open(ax.Field(i)).Interface(), open(ay.Field(i)).Interface()) {
				return false
			}
		}
		return true
	case reflect.Array:
		ax, ay := addressable(vx), addressable(vy)
		for i := 0; i < ax.Len(); i++ {
			if !Same(open(ax.Index(i)).Interface(), open(ay.Index(i)).Interface()) {
				return false
			}
		}
		return true
	}
	return false
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// addressable returns an addressable copy of v.
func addressable(v reflect.Value) reflect.Value {
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// open returns v, which must be addressable, without the read-only flag
// set on unexported fields, so its value can be boxed with Interface.
func open(v reflect.Value) reflect.Value {
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// eface mirrors the runtime layout of an empty interface.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// funcPointer returns the closure pointer of a func stored in an interface.
// Unlike reflect.Value.Pointer it distinguishes closures created from the
// same function literal.
func funcPointer(f any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&f)).data
}

// sameDeps reports whether two dependency lists are pairwise Same.
func sameDeps(a, b Deps) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}
