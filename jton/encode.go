package jton

import "math"

// maxEncodeDepth bounds recursion while walking a Value tree to encode
// it, mirroring the parser's guard so a pathologically nested value
// constructed directly through the API (bypassing ParseJSON) still fails
// cleanly (§5).
const maxEncodeDepth = 2000

// Compress rewrites v into JTON text using the default options. It
// always returns valid JSON: an envelope object {"d":...,"m":...} when
// that encoding is strictly shorter than the plain canonical form, or
// the canonical form itself otherwise (§3, §4.6).
func Compress(v *Value) (string, error) {
	return CompressWithOptions(v, DefaultOptions())
}

// CompressWithOptions is Compress with an explicit Options value, e.g.
// HumanReadableOptions() to keep the output free of base64 payloads.
func CompressWithOptions(v *Value, opts Options) (string, error) {
	kd := newKeyDict()
	encoded, err := enc(v, kd, 0, opts)
	if err != nil {
		return "", err
	}

	canonicalText := Canonical(v)

	envelope := Obj(Member{Key: "d", Value: encoded}, Member{Key: "m", Value: kd.toValue()})
	envelopeText := Canonical(envelope)

	if len(envelopeText) < len(canonicalText) {
		return envelopeText, nil
	}
	return canonicalText, nil
}

// enc recursively transforms v into its descriptor form, interning
// object keys into kd as they are first encountered in depth-first,
// left-to-right order.
func enc(v *Value, kd *keyDict, depth int, opts Options) (*Value, error) {
	depth++
	if depth > maxEncodeDepth {
		return nil, newErr(DepthExceeded, "", "nesting depth exceeds %d", maxEncodeDepth)
	}

	switch v.kind {
	case KindNull, KindBool, KindInt:
		return v, nil

	case KindFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return nil, newErr(UnsupportedValue, "", "non-finite float value")
		}
		return v, nil

	case KindString:
		return wrapIfReserved(v), nil

	case KindArray:
		if isColumnCandidate(v.arrVal) {
			return encColumn(v.arrVal, kd, depth, opts)
		}
		return packSequence(v.arrVal, kd, depth, opts)

	case KindObject:
		members := make([]Member, len(v.objVal))
		for i, m := range v.objVal {
			tok := kd.intern(m.Key)
			encVal, err := enc(m.Value, kd, depth, opts)
			if err != nil {
				return nil, err
			}
			members[i] = Member{Key: tok, Value: encVal}
		}
		return Obj(members...), nil

	default:
		return nil, newErr(UnsupportedValue, "", "unknown value kind")
	}
}

// wrapIfReserved escapes a literal string that would otherwise be
// mistaken for a packed binary blob at decode time (§4.4): any string
// beginning with one of the single-character binary-pack prefixes gets
// wrapped as {"S": <original>}.
func wrapIfReserved(v *Value) *Value {
	if len(v.strVal) > 0 && reservedStringPrefixes[v.strVal[0]] {
		return Obj(Member{Key: "S", Value: v})
	}
	return v
}

// encColumn builds the {"a","k","d"} columnar descriptor for an array
// that has already qualified via isColumnCandidate (§4.3). Each column
// is independently run back through packSequence so a column of, say,
// all-integer values still benefits from integer-width packing.
func encColumn(arr []*Value, kd *keyDict, depth int, opts Options) (*Value, error) {
	keys := columnKeys(arr)
	keyTokens := make([]*Value, len(keys))
	for i, k := range keys {
		keyTokens[i] = Str(kd.intern(k))
	}

	cols := make([]*Value, len(keys))
	for i := range keys {
		colDesc, err := packSequence(columnValues(arr, i), kd, depth, opts)
		if err != nil {
			return nil, err
		}
		cols[i] = colDesc
	}

	return Obj(
		Member{Key: "a", Value: Int(int64(len(arr)))},
		Member{Key: "k", Value: Arr(keyTokens...)},
		Member{Key: "d", Value: Arr(cols...)},
	), nil
}

// packSequence picks the shortest-encoding descriptor for a homogeneous
// or heterogeneous run of values (§4.4). When an arithmetic progression
// or a constant run applies, the base64 packers are not tried, so that
// descriptor competes only with the plain list. The plain per-element encoding
// is always computed first and unconditionally, regardless of whether it
// ultimately wins, so that key-dictionary interning happens in a
// canonical left-to-right order independent of which candidate is
// cheapest.
func packSequence(values []*Value, kd *keyDict, depth int, opts Options) (*Value, error) {
	plainDescriptors := make([]*Value, len(values))
	for i, v := range values {
		d, err := enc(v, kd, depth, opts)
		if err != nil {
			return nil, err
		}
		plainDescriptors[i] = d
	}
	plainList := Arr(plainDescriptors...)

	if len(values) < 2 {
		return plainList, nil
	}

	var candidates []*Value

	if apDesc, ok := tryArithmeticProgression(values); ok {
		candidates = append(candidates, apDesc)
	}
	if allDeepEqualToFirst(values) {
		candidates = append(candidates, Obj(
			Member{Key: "c", Value: plainDescriptors[0]},
			Member{Key: "n", Value: Int(int64(len(values)))},
		))
	}
	patterned := len(candidates) > 0
	if prefixDesc, ok := tryPrefixFactor(values); ok {
		candidates = append(candidates, prefixDesc)
	}
	if !opts.HumanReadable && !patterned {
		if allKind(values, KindBool) && len(values) >= boolPackThreshold {
			candidates = append(candidates, packBoolsDescriptor(values))
		}
		if allKind(values, KindInt) {
			candidates = append(candidates, packIntsDescriptor(values))
		}
		if scaledDesc, ok := tryScaledFloat(values); ok {
			candidates = append(candidates, scaledDesc)
		}
		if allKind(values, KindFloat) {
			candidates = append(candidates, packDoublesDescriptor(values))
		}
	}
	candidates = append(candidates, plainList)

	var best *Value
	bestCost := -1
	for _, c := range candidates {
		cost := len(Canonical(c))
		if bestCost == -1 || cost < bestCost {
			best = c
			bestCost = cost
		}
	}
	return best, nil
}

func allDeepEqualToFirst(values []*Value) bool {
	for _, v := range values[1:] {
		if !deepEqual(values[0], v) {
			return false
		}
	}
	return true
}
