package api

import (
	"encoding/json"
	"testing"
)

func TestDecimalUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want Decimal
	}{
		{`"1234.50"`, 1234.5},
		{`1234.5`, 1234.5},
		{`"0.0600"`, 0.06},
		{`0`, 0},
		{`null`, 0},
		{`""`, 0},
	}
	for _, tc := range cases {
		var d Decimal
		if err := json.Unmarshal([]byte(tc.raw), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if d != tc.want {
			t.Fatalf("unmarshal %s = %v, want %v", tc.raw, d, tc.want)
		}
	}
}

func TestDecimalUnmarshalRejectsGarbage(t *testing.T) {
	var d Decimal
	if err := json.Unmarshal([]byte(`"not-a-number"`), &d); err == nil {
		t.Fatal("expected error")
	}
}

func TestDecimalInStruct(t *testing.T) {
	var slip Payslip
	raw := `{"id":1,"gross_salary":"150000.00","net_pay":112430.75}`
	if err := json.Unmarshal([]byte(raw), &slip); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if slip.GrossSalary != 150000 || slip.NetPay != 112430.75 {
		t.Fatalf("decoded %v / %v", slip.GrossSalary, slip.NetPay)
	}
}
