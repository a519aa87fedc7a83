package integrations

import (
	"context"
	"testing"

	pkgerrors "github.com/ledgerline/backend/pkg/errors"
)

func TestStubTesterAcceptsLongKeys(t *testing.T) {
	tester := NewStubTester()

	for _, integrationType := range []string{TypePlaid, TypeStripe, TypeGusto} {
		result, err := tester.Test(context.Background(), integrationType, "sk_test_1234567890")
		if err != nil {
			t.Fatalf("expected success for %s, got %v", integrationType, err)
		}
		if result.Status != StatusConnected {
			t.Fatalf("expected status %q, got %q", StatusConnected, result.Status)
		}
		want := integrationType + " connection successful!"
		if result.Message != want {
			t.Fatalf("expected message %q, got %q", want, result.Message)
		}
	}
}

func TestStubTesterRejectsShortKeys(t *testing.T) {
	tester := NewStubTester()

	for _, apiKey := range []string{"", "short", "123456789", "   padded  "} {
		_, err := tester.Test(context.Background(), TypePlaid, apiKey)
		if err == nil {
			t.Fatalf("expected error for key %q", apiKey)
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestStubTesterRejectsUnknownType(t *testing.T) {
	tester := NewStubTester()

	_, err := tester.Test(context.Background(), "quickbooks", "sk_test_1234567890")
	if err == nil {
		t.Fatal("expected error for unknown integration type")
	}
}
