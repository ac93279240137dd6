package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("gateway timeout")
	err := Wrap(CodeDependency, cause, "charge card")

	if err.Code() != CodeDependency {
		t.Fatalf("expected %s, got %s", CodeDependency, err.Code())
	}
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
}

func TestAsUnwrapsThroughFmt(t *testing.T) {
	inner := New(CodeStateConflict, "submission already in progress")
	outer := fmt.Errorf("submit: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error through wrapping")
	}
	if typed.Code() != CodeStateConflict {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestMetadataForUnknownCode(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown codes should map to 500, got %d", meta.HTTPStatus)
	}
}

func TestMetadataForPaymentFailed(t *testing.T) {
	meta := MetadataFor(CodePaymentFailed)
	if meta.HTTPStatus != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", meta.HTTPStatus)
	}
	if !meta.Retryable {
		t.Fatal("payment failures are retryable")
	}
}

func TestDumpIncludesChain(t *testing.T) {
	err := Wrap(CodeInternal, stdErrors.New("root"), "outer")
	dump := Dump(err)
	if dump.Code != CodeInternal {
		t.Fatalf("unexpected code %s", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", dump.Chain)
	}
}
