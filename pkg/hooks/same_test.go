package hooks

import (
	"math"
	"strings"
	"testing"
)

type point struct{ X, Y int }

type bag struct{ items []int }

type filter struct {
	Name string
	Tags []string
}

type tagged struct{ Meta map[string]string }

type withHandler struct{ fn func() }

type boxed struct{ v any }

var (
	shared     = []int{1}
	sharedMeta = map[string]string{"k": "v"}
	handler    = func() {}
)

func TestSameValueKinds(t *testing.T) {
	tests := []struct {
		name string
		x, y any
		want bool
	}{
		{"int", 5, 5, true},
		{"int differs", 5, 6, false},
		{"uint8", uint8(3), uint8(3), true},
		{"float", 1.5, 1.5, true},
		{"complex", complex(1, 2), complex(1, 2), true},
		{"string built separately", strings.Repeat("a", 3), "aaa", true},
		{"bool", true, true, true},
		{"bytes built separately", []byte("abc"), append([]byte("ab"), 'c'), true},
		{"bytes differ", []byte("abc"), []byte("abd"), false},
		{"int vs int64", 1, int64(1), false},
		{"int vs float", 1, 1.0, false},
		{"nil nil", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"NaN", math.NaN(), math.NaN(), true},
		{"NaN vs number", math.NaN(), 1.0, false},
		{"comparable structs", point{1, 2}, point{1, 2}, true},
		{"non-comparable structs", bag{[]int{1}}, bag{[]int{1}}, false},
		{"non-comparable struct copies", bag{shared}, bag{shared}, true},
		{"struct with map field", tagged{Meta: sharedMeta}, tagged{Meta: sharedMeta}, true},
		{"struct with map field differs", tagged{Meta: sharedMeta}, tagged{Meta: map[string]string{}}, false},
		{"struct with func field", withHandler{fn: handler}, withHandler{fn: handler}, true},
		{"struct with interface field", boxed{v: shared}, boxed{v: shared}, true},
		{"struct with interface field differs", boxed{v: shared}, boxed{v: []int{1}}, false},
		{"struct with scalar field differs", filter{Name: "a", Tags: []string{"x"}}, filter{Name: "b", Tags: []string{"x"}}, false},
		{"array of slices", [2][]int{shared, shared}, [2][]int{shared, shared}, true},
		{"array of slices differs", [2][]int{shared, shared}, [2][]int{shared, {1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Same(tt.x, tt.y); got != tt.want {
				t.Errorf("Same(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSameIdentityKinds(t *testing.T) {
	p1, p2 := &point{1, 2}, &point{1, 2}
	if !Same(p1, p1) {
		t.Error("pointer should be same as itself")
	}
	if Same(p1, p2) {
		t.Error("distinct pointers with equal contents must differ")
	}

	m1, m2 := map[string]int{"a": 1}, map[string]int{"a": 1}
	if !Same(m1, m1) || Same(m1, m2) {
		t.Error("maps compare by identity")
	}

	s1, s2 := []int{1, 2}, []int{1, 2}
	if !Same(s1, s1) || Same(s1, s2) {
		t.Error("slices compare by identity")
	}
	if Same(s1, s1[:1]) {
		t.Error("reslice with different length must differ")
	}

	ch := make(chan int)
	if !Same(ch, ch) || Same(ch, make(chan int)) {
		t.Error("channels compare by identity")
	}
}

func TestSameFuncs(t *testing.T) {
	mk := func(n int) func() int { return func() int { return n } }
	f1, f2 := mk(1), mk(1)

	if !Same(f1, f1) {
		t.Error("closure should be same as itself")
	}
	if Same(f1, f2) {
		t.Error("closures from the same literal must differ")
	}
	if !Same(strings.ToUpper, strings.ToUpper) {
		t.Error("top-level function should be same as itself")
	}
}

func TestSameReflexive(t *testing.T) {
	values := []any{
		0, "x", []byte("y"), &point{}, map[int]int{}, []string{"z"}, point{}, func() {},
		math.NaN(), filter{Name: "f", Tags: []string{"a"}}, bag{[]int{1}}, [1]map[int]int{{}},
		boxed{v: []int{2}}, withHandler{fn: func() {}},
	}
	for _, v := range values {
		if !Same(v, v) {
			t.Errorf("Same(%T, itself) = false", v)
		}
	}
}

func TestSameDeps(t *testing.T) {
	if !sameDeps(Deps{1, "a"}, Deps{1, "a"}) {
		t.Error("equal deps should be same")
	}
	if sameDeps(Deps{1}, Deps{1, 2}) {
		t.Error("length change must differ")
	}
	if sameDeps(Deps{1, 2}, Deps{1, 3}) {
		t.Error("element change must differ")
	}
}
