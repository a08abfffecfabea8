package jton

import "testing"

func TestParseNumberClassification(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"1", KindInt},
		{"-1", KindInt},
		{"0", KindInt},
		{"1.0", KindFloat},
		{"1e10", KindFloat},
		{"1E10", KindFloat},
		{"-2.5e-3", KindFloat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseJSON(%q): %v", tt.input, err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("ParseJSON(%q).Kind() = %s, want %s", tt.input, v.Kind(), tt.kind)
			}
		})
	}
}

func TestParseRejectsLeadingZero(t *testing.T) {
	if _, err := ParseJSON([]byte("01")); !IsCode(err, InvalidJson) {
		t.Errorf("expected InvalidJson for leading zero, got %v", err)
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	if _, err := ParseJSON([]byte("1 2")); err == nil {
		t.Error("expected error for trailing content")
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	v, err := ParseJSON([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(v.AsObj()) != 1 {
		t.Fatalf("expected duplicate key collapsed to one member, got %d", len(v.AsObj()))
	}
	if v.Get("a").AsInt() != 2 {
		t.Errorf("expected last value to win, got %d", v.Get("a").AsInt())
	}
}

func TestParseSurrogatePair(t *testing.T) {
	v, err := ParseJSON([]byte(`"\ud83d\ude00"`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if v.AsStr() != "\U0001F600" {
		t.Errorf("got %q, want grinning face emoji", v.AsStr())
	}
}

func TestParseLoneSurrogateRejected(t *testing.T) {
	if _, err := ParseJSON([]byte(`"\ud83d"`)); !IsCode(err, InvalidJson) {
		t.Errorf("expected InvalidJson for lone surrogate, got %v", err)
	}
}

func TestParseDepthGuard(t *testing.T) {
	deep := make([]byte, 0, maxParseDepth*2+10)
	for i := 0; i < maxParseDepth+10; i++ {
		deep = append(deep, '[')
	}
	for i := 0; i < maxParseDepth+10; i++ {
		deep = append(deep, ']')
	}
	if _, err := ParseJSON(deep); !IsCode(err, DepthExceeded) {
		t.Errorf("expected DepthExceeded, got %v", err)
	}
}
