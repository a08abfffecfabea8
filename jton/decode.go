package jton

// maxDecodeDepth mirrors the encode-side guard so an adversarial or
// corrupted envelope cannot exhaust the call stack while being expanded.
const maxDecodeDepth = 2000

// Decompress parses text as JSON and, if it is a JTON envelope (a root
// object with exactly the keys "d" and "m", "m" mapping to an object of
// string tokens), reconstructs the original value. Any other valid JSON
// document is returned unchanged, since Compress's global fallback means
// plain canonical JSON is itself a valid JTON document (§3).
func Decompress(text string) (*Value, error) {
	root, err := ParseJSON([]byte(text))
	if err != nil {
		return nil, err
	}

	if root.kind != KindObject || !root.Has("d", "m") || !looksLikeKeyDict(root.Get("m")) {
		return root, nil
	}
	inv := invertKeyDict(root.Get("m"))
	return decTree(root.Get("d"), inv, 0)
}

// looksLikeKeyDict reports whether m satisfies the "m" half of envelope
// detection (§3): an object whose values are all strings. A root object
// that has "d" and "m" keys but whose "m" fails this test does not look
// like an envelope at all, so Decompress falls through to returning the
// document verbatim rather than erroring.
func looksLikeKeyDict(m *Value) bool {
	if m.kind != KindObject {
		return false
	}
	for _, member := range m.objVal {
		if member.Value.kind != KindString {
			return false
		}
	}
	return true
}

// decTree is the inverse of enc: it walks a descriptor tree and rebuilds
// the original value, expanding every packed shape back into plain
// values.
func decTree(v *Value, inv map[string]string, depth int) (*Value, error) {
	depth++
	if depth > maxDecodeDepth {
		return nil, newErr(DepthExceeded, "", "nesting depth exceeds %d", maxDecodeDepth)
	}

	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat:
		return v, nil

	case KindString:
		if len(v.strVal) > 0 && reservedStringPrefixes[v.strVal[0]] {
			return decPackedString(v.strVal)
		}
		return v, nil

	case KindArray:
		elems := make([]*Value, len(v.arrVal))
		for i, e := range v.arrVal {
			d, err := decTree(e, inv, depth)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return Arr(elems...), nil

	case KindObject:
		return decObject(v, inv, depth)

	default:
		return nil, newErr(MalformedInput, "", "unrecognized descriptor node")
	}
}

func decPackedString(s string) (*Value, error) {
	switch s[0] {
	case prefixBoolPack:
		elems, err := decodeBoolPack(s)
		if err != nil {
			return nil, err
		}
		return Arr(elems...), nil
	case prefixUint8, prefixInt8, prefixUint16, prefixInt16, prefixInt32, prefixInt64:
		elems, err := decodeIntPack(s)
		if err != nil {
			return nil, err
		}
		return Arr(elems...), nil
	case prefixScaled100, prefixScaled1000:
		elems, err := decodeScaledFloat(s)
		if err != nil {
			return nil, err
		}
		return Arr(elems...), nil
	case prefixDouble:
		elems, err := decodeDoubles(s)
		if err != nil {
			return nil, err
		}
		return Arr(elems...), nil
	default:
		return nil, newErr(MalformedInput, "", "unknown packed-string prefix %q", string(s[0]))
	}
}

func decObject(v *Value, inv map[string]string, depth int) (*Value, error) {
	switch {
	case v.Has("S"):
		return v.Get("S"), nil

	case v.Has("s", "d", "n"):
		return decArithmetic(v)

	case v.Has("c", "n"):
		val, err := decTree(v.Get("c"), inv, depth)
		if err != nil {
			return nil, err
		}
		n := v.Get("n").intVal
		if n < 0 {
			return nil, newErr(MalformedInput, "", "constant run has negative count")
		}
		elems := make([]*Value, n)
		for i := range elems {
			elems[i] = val
		}
		return Arr(elems...), nil

	case v.Has("p", "x"):
		return decPrefix(v)

	case v.Has("a", "k", "d"):
		return decColumn(v, inv, depth)

	default:
		return decPlainObject(v, inv, depth)
	}
}

func decArithmetic(v *Value) (*Value, error) {
	s, d, n := v.Get("s"), v.Get("d"), v.Get("n")
	if n.kind != KindInt || n.intVal < 0 {
		return nil, newErr(MalformedInput, "", "arithmetic progression has invalid count")
	}
	count := n.intVal

	switch {
	case s.kind == KindInt && d.kind == KindInt:
		elems := make([]*Value, count)
		for i := int64(0); i < count; i++ {
			elems[i] = Int(s.intVal + i*d.intVal)
		}
		return Arr(elems...), nil
	case s.kind == KindFloat && d.kind == KindFloat:
		elems := make([]*Value, count)
		for i := int64(0); i < count; i++ {
			elems[i] = Float(s.floatVal + float64(i)*d.floatVal)
		}
		return Arr(elems...), nil
	default:
		return nil, newErr(MalformedInput, "", "arithmetic progression has mismatched s/d kinds")
	}
}

func decPrefix(v *Value) (*Value, error) {
	p, x := v.Get("p"), v.Get("x")
	if p.kind != KindString || x.kind != KindArray {
		return nil, newErr(MalformedInput, "", "prefix descriptor has wrong field kinds")
	}
	elems := make([]*Value, len(x.arrVal))
	for i, suffix := range x.arrVal {
		if suffix.kind != KindString {
			return nil, newErr(MalformedInput, "", "prefix suffix at index %d is not a string", i)
		}
		elems[i] = Str(p.strVal + suffix.strVal)
	}
	return Arr(elems...), nil
}

func decColumn(v *Value, inv map[string]string, depth int) (*Value, error) {
	a, k, d := v.Get("a"), v.Get("k"), v.Get("d")
	if a.kind != KindInt || a.intVal < 0 {
		return nil, newErr(MalformedInput, "", "column array has invalid row count")
	}
	if k.kind != KindArray || d.kind != KindArray || len(k.arrVal) != len(d.arrVal) {
		return nil, newErr(MalformedInput, "", "column array has mismatched key/data lengths")
	}
	rows := int(a.intVal)

	keys := make([]string, len(k.arrVal))
	for i, tok := range k.arrVal {
		if tok.kind != KindString {
			return nil, newErr(MalformedInput, "", "column key at index %d is not a string", i)
		}
		orig, ok := inv[tok.strVal]
		if !ok {
			return nil, newErr(MalformedInput, "", "column key token %q not in key dictionary", tok.strVal)
		}
		keys[i] = orig
	}

	columns := make([][]*Value, len(d.arrVal))
	for i, colDesc := range d.arrVal {
		decoded, err := decTree(colDesc, inv, depth)
		if err != nil {
			return nil, err
		}
		if decoded.kind != KindArray || len(decoded.arrVal) != rows {
			return nil, newErr(MalformedInput, "", "column %d does not decode to %d rows", i, rows)
		}
		columns[i] = decoded.arrVal
	}

	out := make([]*Value, rows)
	for r := 0; r < rows; r++ {
		members := make([]Member, len(keys))
		for c, key := range keys {
			members[c] = Member{Key: key, Value: columns[c][r]}
		}
		out[r] = Obj(members...)
	}
	return Arr(out...), nil
}

func decPlainObject(v *Value, inv map[string]string, depth int) (*Value, error) {
	members := make([]Member, len(v.objVal))
	for i, m := range v.objVal {
		orig, ok := inv[m.Key]
		if !ok {
			return nil, newErr(MalformedInput, "", "object key token %q not in key dictionary", m.Key)
		}
		val, err := decTree(m.Value, inv, depth)
		if err != nil {
			return nil, err
		}
		members[i] = Member{Key: orig, Value: val}
	}
	return Obj(members...), nil
}
