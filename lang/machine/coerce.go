package machine

// TagAny matches any value without requiring a particular tag; it is only
// meaningful as an argument to expect, never a real Value.Type() result.
const TagAny = "any"

// coerce converts v to want if possible, either because it already has that
// tag, or via the small coercion table of §4.6: SOURCE -> STRING (by
// borrowing the buffer), CHAR -> INT (by promotion).
func coerce(v Value, want string) (Value, bool) {
	if want == TagAny || v.Type() == want {
		return v, true
	}
	switch want {
	case TagString:
		if src, ok := v.(Source); ok {
			return String(src.Buf()), true
		}
	case TagInt:
		if c, ok := v.(Char); ok {
			return Int(int64(c)), true
		}
	}
	return nil, false
}

// expect pops len(types) values matching types in TOP...BOTTOM order
// (types[0] is the type required of the current top of stack), applying
// coercion where needed. On success it returns the (possibly coerced)
// values in the same TOP...BOTTOM order and pops them all. On failure it
// returns ok=false and leaves the stack completely untouched (§4.6, §7
// "Wrong arguments").
func (m *Machine) expect(types ...string) (vals []Value, ok bool) {
	n := len(types)
	if len(m.stack) < n {
		return nil, false
	}
	vals = make([]Value, n)
	for i := 0; i < n; i++ {
		idx := len(m.stack) - 1 - i
		cv, ok := coerce(m.stack[idx], types[i])
		if !ok {
			return nil, false
		}
		vals[i] = cv
	}
	m.stack = m.stack[:len(m.stack)-n]
	return vals, true
}
