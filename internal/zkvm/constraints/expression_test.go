package constraints

import "testing"

func TestEvalConstant(t *testing.T) {
	v, ok := Const(42).Eval(Witness{})
	if !ok || v != 42 {
		t.Errorf("Eval = (%d, %v), want (42, true)", v, ok)
	}
}

func TestEvalVariableMissing(t *testing.T) {
	_, ok := Var("x").Eval(Witness{})
	if ok {
		t.Error("Eval of a missing variable should report ok=false")
	}
}

func TestEvalArithmetic(t *testing.T) {
	w := Witness{"a": 10, "b": 3}
	cases := []struct {
		name string
		expr *Expression
		want uint32
	}{
		{"add", Add(Var("a"), Var("b")), 13},
		{"sub", Sub(Var("a"), Var("b")), 7},
		{"mul", Mul(Var("a"), Var("b")), 30},
		{"nested", Add(Mul(Var("a"), Const(2)), Var("b")), 23},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.expr.Eval(w)
			if !ok {
				t.Fatal("Eval reported ok=false")
			}
			if got != c.want {
				t.Errorf("Eval = %d, want %d", got, c.want)
			}
		})
	}
}

func TestEvalSubWraps(t *testing.T) {
	w := Witness{"a": 0, "b": 1}
	got, ok := Sub(Var("a"), Var("b")).Eval(w)
	if !ok {
		t.Fatal("Eval reported ok=false")
	}
	if got != 0xffffffff {
		t.Errorf("Eval = 0x%x, want 0xffffffff", got)
	}
}

func TestEvalPropagatesMissingVariable(t *testing.T) {
	w := Witness{"a": 1}
	_, ok := Add(Var("a"), Var("missing")).Eval(w)
	if ok {
		t.Error("Eval should report ok=false when a subexpression is missing a variable")
	}
}
