package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(CodeCSVField, CategoryData, "bad salary value")

	if got := err.Error(); got != "CSV_FIELD: bad salary value" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := fmt.Errorf("strconv: invalid syntax")
	err := Wrap(cause, CodeCSVField, CategoryData, "bad salary value")

	got := err.Error()
	if !strings.Contains(got, "CSV_FIELD") {
		t.Errorf("error string missing code: %q", got)
	}
	if !strings.Contains(got, "invalid syntax") {
		t.Errorf("error string missing cause: %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, CodeReportWrite, CategoryIO, "write failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should see through to the cause")
	}
	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("Unwrap returned %v, want %v", got, cause)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := ValidationError(CodeRowShapeMismatch, "row shape mismatch")
	err := ValidationErrorf(CodeRowShapeMismatch, "row 3 has 9 cells, want 10")

	if !stderrors.Is(err, sentinel) {
		t.Error("errors with the same code should match via errors.Is")
	}

	other := ValidationError(CodeInvalidColumnSpec, "bad spec")
	if stderrors.Is(err, other) {
		t.Error("errors with different codes must not match")
	}
}

func TestWithContext(t *testing.T) {
	err := DataError(CodeCSVRecord, "wrong field count").
		WithContext("line", "14").
		WithContext("fields", "9")

	if !err.HasContext() {
		t.Fatal("expected context to be present")
	}

	ctx := err.ContextString()
	if !strings.Contains(ctx, `line="14"`) {
		t.Errorf("context string missing line entry: %q", ctx)
	}
	if !strings.Contains(ctx, `fields="9"`) {
		t.Errorf("context string missing fields entry: %q", ctx)
	}
}

func TestAsReportError(t *testing.T) {
	re, ok := AsReportError(IOError(CodeCSVOpen, "no such file"))
	if !ok {
		t.Fatal("expected conversion to succeed")
	}
	if re.Code != CodeCSVOpen {
		t.Errorf("unexpected code %q", re.Code)
	}

	if _, ok := AsReportError(fmt.Errorf("plain")); ok {
		t.Error("plain errors must not convert")
	}
	if _, ok := AsReportError(nil); ok {
		t.Error("nil must not convert")
	}
}

func TestIsCategoryAndCode(t *testing.T) {
	err := ConfigError(CodeConfigParse, "bad yaml")

	if !IsCategory(err, CategoryConfig) {
		t.Error("expected config category match")
	}
	if IsCategory(err, CategoryIO) {
		t.Error("unexpected io category match")
	}
	if !IsCode(err, CodeConfigParse) {
		t.Error("expected code match")
	}
	if IsCode(err, CodeConfigRead) {
		t.Error("unexpected code match")
	}
}

func TestHelperConstructorCategories(t *testing.T) {
	cases := []struct {
		err  *ReportError
		want Category
	}{
		{ValidationError("C", "m"), CategoryValidation},
		{LayoutError("C", "m"), CategoryLayout},
		{DataError("C", "m"), CategoryData},
		{IOError("C", "m"), CategoryIO},
		{ConfigError("C", "m"), CategoryConfig},
		{InternalError("C", "m"), CategoryInternal},
	}

	for _, tc := range cases {
		if tc.err.Category != tc.want {
			t.Errorf("constructor produced category %q, want %q", tc.err.Category, tc.want)
		}
	}
}
