package harness

import "testing"

func TestBooleanChecks(t *testing.T) {
	rec := &T{name: "x"}
	if !rec.True(true, "t") || rec.Failed() {
		t.Fatalf("True(true) must pass")
	}
	if rec.False(true, "f") || !rec.Failed() {
		t.Fatalf("False(true) must record a failure")
	}
	if rec.message != "f" {
		t.Fatalf("recorded message = %q, want f", rec.message)
	}
}

func TestEqualityChecks(t *testing.T) {
	rec := &T{name: "x"}
	if !Equal(rec, "a", "a", "eq") || !NotEqual(rec, 1, 2, "ne") {
		t.Fatalf("passing checks reported failure")
	}
	if rec.Failed() {
		t.Fatalf("recorder failed after passing checks")
	}
	if Equal(rec, 1, 2, "eq") || !rec.Failed() {
		t.Fatalf("Equal(1,2) must record a failure")
	}
	if rec.message != "eq: got 1, want 2" {
		t.Fatalf("message = %q", rec.message)
	}
}

func TestOrderedChecks(t *testing.T) {
	rec := &T{name: "x"}
	ok := Greater(rec, 2, 1, "gt") &&
		GreaterEq(rec, 2, 2, "ge") &&
		Less(rec, 1, 2, "lt") &&
		LessEq(rec, 2, 2, "le") &&
		Greater(rec, "b", "a", "strings order too")
	if !ok || rec.Failed() {
		t.Fatalf("passing ordered checks recorded a failure: %q", rec.message)
	}
	if Less(rec, 2, 1, "lt") || !rec.Failed() {
		t.Fatalf("Less(2,1) must record a failure")
	}
}

func TestStrEqual(t *testing.T) {
	rec := &T{name: "x"}
	if !rec.StrEqual("ok", "ok", "s") || rec.Failed() {
		t.Fatalf("StrEqual equal strings must pass")
	}
	rec.StrEqual("got", "want", "s")
	if rec.message != `s: got "got", want "want"` {
		t.Fatalf("message = %q", rec.message)
	}
}

func TestRequireVariantsShortCircuit(t *testing.T) {
	rec := &T{name: "x"}
	defer func() {
		if _, ok := recover().(failNow); !ok {
			t.Fatalf("RequireEqual must raise the short-circuit signal")
		}
		if !rec.Failed() {
			t.Fatalf("failure not recorded before short-circuit")
		}
	}()
	rec.RequireTrue(true, "fine")
	RequireEqual(rec, 1, 2, "boom")
	t.Fatalf("unreachable")
}
