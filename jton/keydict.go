package jton

// base62Alphabet is used to generate key tokens: least-significant digit
// on the right, alphabet order 0-9 then A-Z then a-z, so token 0 is "0",
// token 61 is "z", and token 62 is "10".
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// reservedWords are the descriptor shape keys (§4.6). Because key tokens
// share the JSON object-key namespace with these, a generated token that
// collides with one of them is skipped during assignment so that a
// decoded object's keys can always be told apart from a descriptor shape.
var reservedWords = map[string]bool{
	"s": true, "d": true, "n": true, "c": true,
	"p": true, "x": true, "a": true, "k": true, "S": true,
}

func encodeBase62(n int) string {
	if n == 0 {
		return string(base62Alphabet[0])
	}
	var buf []byte
	for n > 0 {
		buf = append(buf, base62Alphabet[n%62])
		n /= 62
	}
	// reverse
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// keyDict is the append-only, insertion-ordered key dictionary built
// during one encode pass (§4.2). Tokens are assigned in depth-first,
// left-to-right first-encounter order as the encoder walks the input.
type keyDict struct {
	tokenOf map[string]string
	order   []string // original keys, in assignment order
	next    int
}

func newKeyDict() *keyDict {
	return &keyDict{tokenOf: make(map[string]string)}
}

// intern returns the token for key, assigning a fresh one on first sight.
func (d *keyDict) intern(key string) string {
	if tok, ok := d.tokenOf[key]; ok {
		return tok
	}
	tok := d.nextToken()
	d.tokenOf[key] = tok
	d.order = append(d.order, key)
	return tok
}

func (d *keyDict) nextToken() string {
	for {
		tok := encodeBase62(d.next)
		d.next++
		if !reservedWords[tok] {
			return tok
		}
	}
}

// toValue renders the dictionary as the "m" object: original key strings
// mapped to their assigned token strings, in assignment order. Empty if
// no keys were ever interned.
func (d *keyDict) toValue() *Value {
	members := make([]Member, len(d.order))
	for i, k := range d.order {
		members[i] = Member{Key: k, Value: Str(d.tokenOf[k])}
	}
	return Obj(members...)
}

// invertKeyDict builds the token->original-key map a decoder needs, from
// the parsed "m" object. Callers must first confirm m looks like a key
// dictionary (looksLikeKeyDict) as part of envelope detection; by the
// time this runs, every value under "m" is already known to be a string.
func invertKeyDict(m *Value) map[string]string {
	inv := make(map[string]string, len(m.objVal))
	for _, member := range m.objVal {
		inv[member.Value.strVal] = member.Key
	}
	return inv
}
