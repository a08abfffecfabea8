package jton

// isColumnCandidate reports whether arr qualifies for columnar encoding
// (§4.3): at least two elements, every element an object, and every
// object sharing the exact same key set in the exact same insertion
// order as the first element. Qualification is purely structural; there
// is no cost comparison against the plain-array encoding, and enc in
// encode.go returns the columnar descriptor for every array that
// qualifies.
func isColumnCandidate(arr []*Value) bool {
	if len(arr) < 2 {
		return false
	}
	for _, v := range arr {
		if v.kind != KindObject {
			return false
		}
	}
	first := arr[0].objVal
	for _, v := range arr[1:] {
		rest := v.objVal
		if len(rest) != len(first) {
			return false
		}
		for i := range first {
			if first[i].Key != rest[i].Key {
				return false
			}
		}
	}
	return true
}

// columnKeys returns the shared key order of a qualifying column array.
func columnKeys(arr []*Value) []string {
	first := arr[0].objVal
	keys := make([]string, len(first))
	for i, m := range first {
		keys[i] = m.Key
	}
	return keys
}

// columnValues extracts the column at position idx across every row.
func columnValues(arr []*Value, idx int) []*Value {
	out := make([]*Value, len(arr))
	for i, row := range arr {
		out[i] = row.objVal[idx].Value
	}
	return out
}
