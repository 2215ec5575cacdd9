package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorWrapsAndMatchesByCode(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(CodeScrambleIndexOutOfRange, "index too large", cause)

	if err.Error() != "index too large" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if !errors.Is(err, New(CodeScrambleIndexOutOfRange, "other message")) {
		t.Fatal("expected code-based matching")
	}
	if errors.Is(err, New(CodeNotFound, "index too large")) {
		t.Fatal("expected mismatch for different code")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	cases := map[Code]codes.Code{
		CodeScrambleIndexOutOfRange:      codes.OutOfRange,
		CodeScrambleBaseOffsetInvalid:    codes.InvalidArgument,
		CodeScrambleExponentiatorMissing: codes.FailedPrecondition,
		CodeNotFound:                     codes.NotFound,
		CodeUnknown:                      codes.Internal,
	}
	for code, want := range cases {
		if got := code.GRPCCode(); got != want {
			t.Fatalf("code %s: expected %v, got %v", code, want, got)
		}
	}
}

func TestToGRPCStatusCarriesDetails(t *testing.T) {
	err := WithMetadata(CodeScrambleIndexOutOfRange, "index too large", map[string]string{"index": "10000000000"})

	st, ok := status.FromError(err.ToGRPCStatus("en-US", "Index 10000000000 is beyond the identifier space."))
	if !ok {
		t.Fatal("expected gRPC status")
	}
	if st.Code() != codes.OutOfRange {
		t.Fatalf("expected OutOfRange, got %v", st.Code())
	}

	var foundInfo, foundLocalized bool
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			foundInfo = true
			if d.Reason != string(CodeScrambleIndexOutOfRange) {
				t.Fatalf("unexpected reason %q", d.Reason)
			}
			if d.Domain != Domain {
				t.Fatalf("unexpected domain %q", d.Domain)
			}
			if d.Metadata["index"] != "10000000000" {
				t.Fatalf("unexpected metadata: %v", d.Metadata)
			}
		case *errdetails.LocalizedMessage:
			foundLocalized = true
			if d.Locale != "en-US" {
				t.Fatalf("unexpected locale %q", d.Locale)
			}
		}
	}
	if !foundInfo || !foundLocalized {
		t.Fatalf("expected ErrorInfo and LocalizedMessage details, got %v", st.Details())
	}
}

func TestHandleErrorTranslatesDomainErrors(t *testing.T) {
	err := WithMetadata(CodeScrambleIndexOutOfRange, "index too large", map[string]string{"index": "42"})

	st, ok := status.FromError(HandleError(err, "pt-BR"))
	if !ok {
		t.Fatal("expected gRPC status")
	}
	if st.Code() != codes.OutOfRange {
		t.Fatalf("expected OutOfRange, got %v", st.Code())
	}
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.LocalizedMessage); ok {
			if d.Locale != "pt-BR" {
				t.Fatalf("expected pt-BR locale, got %q", d.Locale)
			}
			return
		}
	}
	t.Fatal("expected LocalizedMessage detail")
}

func TestHandleErrorMasksUnknownErrors(t *testing.T) {
	st, ok := status.FromError(HandleError(fmt.Errorf("database exploded"), ""))
	if !ok {
		t.Fatal("expected gRPC status")
	}
	if st.Code() != codes.Internal {
		t.Fatalf("expected Internal, got %v", st.Code())
	}
	if st.Message() == "database exploded" {
		t.Fatal("expected internal details to be masked")
	}
}

func TestHandleErrorNil(t *testing.T) {
	if err := HandleError(nil, "en-US"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeNotFound, "missing")); got != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("expected UNKNOWN, got %s", got)
	}
	if !IsCode(New(CodeNotFound, "missing"), CodeNotFound) {
		t.Fatal("expected IsCode match")
	}
}
