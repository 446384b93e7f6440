package cell

import (
	"errors"
	"testing"

	api "csvtojson/pkg/api/cell"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		kind     api.Kind
		text     string
		wantJSON string
		wantKind api.Kind
		wantErr  bool
	}{
		{"Int", api.Int, "42", "42", api.Int, false},
		{"Negative int", api.Int, "-7", "-7", api.Int, false},
		{"Leading zeros", api.Int, "007", "7", api.Int, false},
		{"Int garbage", api.Int, "4x", "", api.Null, true},
		{"Float shortest form", api.Float, "1.50", "1.5", api.Float, false},
		{"Float exponent", api.Float, "2.5e3", "2500", api.Float, false},
		{"Float infinity", api.Float, "inf", "null", api.Null, false},
		{"Decimal keeps scale", api.Decimal, "1.50", "1.50", api.Decimal, false},
		{"Decimal keeps digits", api.Decimal, "0.1000000000000000055511151231257827", "0.1000000000000000055511151231257827", api.Decimal, false},
		{"Decimal infinity", api.Decimal, "-Infinity", "null", api.Null, false},
		{"Decimal hex falls back to float", api.Decimal, "0x1p-2", "0.25", api.Float, false},
		{"Bool true", api.Bool, "true", "true", api.Bool, false},
		{"Bool upper case", api.Bool, "FALSE", "false", api.Bool, false},
		{"Bool other spelling", api.Bool, "yes", "", api.Null, true},
		{"Text verbatim", api.Text, " a<b> & \"c\" ", `" a<b> & \"c\" "`, api.Text, false},
		{"Null", api.Null, "anything", "null", api.Null, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.kind, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("Parse() kind = %s, want %s", v.Kind(), tt.wantKind)
			}
			got, err := v.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tt.wantJSON {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.wantJSON)
			}
		})
	}
}

func TestParseUnknownKind(t *testing.T) {
	if _, err := Parse(api.Kind(99), "1"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Parse() error = %v, want %v", err, ErrInvalidType)
	}
}

func TestEqualTo(t *testing.T) {
	d1, _ := ParseDecimal("1.5")
	d2, _ := ParseDecimal("1.50")
	f1, _ := ParseFloat("1.5")

	if !d1.EqualTo(d2) {
		t.Errorf("%s should equal %s", d1, d2)
	}
	if d1.EqualTo(f1) {
		t.Errorf("decimal %s should not equal float %s", d1, f1)
	}
	if !NewInt(3).EqualTo(NewInt(3)) || NewInt(3).EqualTo(NewText("3")) {
		t.Error("int equality is wrong")
	}
	if !None.EqualTo(None) || None.EqualTo(NewText("")) {
		t.Error("null equality is wrong")
	}
	if !NewBool(true).EqualTo(NewBool(true)) || NewBool(true).EqualTo(NewText("true")) {
		t.Error("bool equality is wrong")
	}

	f2, _ := ParseFloat("1.5000000001")
	if f1.EqualTo(f2) {
		t.Errorf("float %s should not equal %s", f1, f2)
	}
	if d1.EqualTo(nil) || f1.EqualTo(nil) {
		t.Error("nil should never be equal")
	}
}

func TestCast(t *testing.T) {
	d, _ := ParseDecimal("2.25")
	if _, err := CastToDecimal(d); err != nil {
		t.Errorf("CastToDecimal() error = %v", err)
	}
	if _, err := CastToFloat(d); !errors.Is(err, ErrInvalidType) {
		t.Errorf("CastToFloat() error = %v, want %v", err, ErrInvalidType)
	}
	f, _ := NewFloat(2.25)
	fv, err := CastToFloat(f)
	if err != nil || fv.GetFloat() != 2.25 {
		t.Errorf("CastToFloat() = %v, %v", fv, err)
	}
}

func TestIsMissing(t *testing.T) {
	for _, s := range []string{"", "NA", "NaN", "null", "#N/A"} {
		if !IsMissing(s) {
			t.Errorf("IsMissing(%q) = false", s)
		}
	}
	for _, s := range []string{"0", "none", " ", "-"} {
		if IsMissing(s) {
			t.Errorf("IsMissing(%q) = true", s)
		}
	}
}
