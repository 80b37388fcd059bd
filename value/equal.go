package value

// Equal reports structural equality. Int and Float compare by numeric value,
// so 1 and 1.0 are equal. Object comparison ignores key order.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.kind == KindInt && b.kind == KindInt {
			return a.i == b.i
		}
		fa, _ := a.AsFloat()
		fb, _ := b.AsFloat()
		return fa == fb
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindText:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		eq := true
		a.obj.Range(func(k string, av Value) bool {
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				eq = false
			}
			return eq
		})
		return eq
	}
	return false
}

// Identical is like Equal but also requires Int/Float tags to match, so it
// can tell a coerced value from its source.
func Identical(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Identical(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ak, bk := a.obj.Keys(), b.obj.Keys()
		if len(ak) != len(bk) {
			return false
		}
		for i := range ak {
			if ak[i] != bk[i] {
				return false
			}
			av, _ := a.obj.Get(ak[i])
			bv, _ := b.obj.Get(bk[i])
			if !Identical(av, bv) {
				return false
			}
		}
		return true
	default:
		return Equal(a, b)
	}
}
