package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected", retryable: true},
		{code: CodeRateLimit, status: http.StatusTooManyRequests, publicMsg: "rate limit exceeded", retryable: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeDependency, cause, "persist tables")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped error to unwrap to cause")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected dependency code through chain, got %+v", typed)
	}
	if !IsCode(wrapped, CodeDependency) {
		t.Fatal("expected IsCode to match through chain")
	}
	if IsCode(stdErrors.New("plain"), CodeDependency) {
		t.Fatal("plain errors carry no code")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"product": "is required"})
	details, ok := err.Details().(map[string]string)
	if !ok || details["product"] != "is required" {
		t.Fatalf("unexpected details %+v", err.Details())
	}
}

func TestNilErrorAccessors(t *testing.T) {
	var err *Error
	if err.Code() != CodeInternal {
		t.Fatalf("nil error should report internal code")
	}
	if err.Message() != "" || err.Details() != nil || err.Error() != "" {
		t.Fatal("nil error accessors should be empty")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := fmt.Errorf("save tables: %w", Wrap(CodeDependency, stdErrors.New("connection refused"), "persist"))
	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", dump.Code)
	}
	if len(dump.Chain) != 3 {
		t.Fatalf("expected three chain entries, got %v", dump.Chain)
	}
	if Dump(nil).TopMessage != "" {
		t.Fatal("expected empty dump for nil")
	}
}

func TestNewfAndCodeOf(t *testing.T) {
	err := Newf(CodeNotFound, "store %q not found", "s9")
	if err.Message() != `store "s9" not found` {
		t.Fatalf("unexpected message %q", err.Message())
	}
	if CodeOf(fmt.Errorf("lookup: %w", err)) != CodeNotFound {
		t.Fatal("expected code through chain")
	}
	if CodeOf(stdErrors.New("plain")) != CodeInternal {
		t.Fatal("plain errors report internal")
	}
}
