package service

import (
	"context"
	"testing"
)

func TestNewParsesInlineServiceDescriptor(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if s.sd.GetName() != "TypeChecker" {
		t.Fatalf("service name = %q, want TypeChecker", s.sd.GetName())
	}
	methods := s.sd.GetMethods()
	if len(methods) != 1 || methods[0].GetName() != "TypeOf" {
		t.Fatalf("unexpected methods on service descriptor: %v", methods)
	}
}

func TestHandleTypeOfReportsDecodeErrorsInResponseField(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	h := &typeCheckerHandler{sd: s.sd}
	md := s.sd.GetMethods()[0]

	// A decoder that leaves the request message empty (no "wire" field set)
	// exercises the failure path: wire.Unmarshal("") cannot resolve a node
	// kind, and that error should surface in the response's error field
	// rather than as a Go error (a malformed document is a TypeChecker
	// result, not a transport failure).
	resp, err := h.handleTypeOf(context.Background(), md, func(interface{}) error { return nil })
	if err != nil {
		t.Fatalf("handleTypeOf returned transport error: %v", err)
	}
	msg, ok := resp.(interface{ GetFieldByName(string) interface{} })
	if !ok {
		t.Fatal("response does not expose GetFieldByName")
	}
	errField, _ := msg.GetFieldByName("error").(string)
	if errField == "" {
		t.Fatal("expected a non-empty error field for an empty request document")
	}
}
