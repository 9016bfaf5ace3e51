package problem

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWrite(t *testing.T) {
	p := NotFound("entry not found")

	rec := httptest.NewRecorder()
	p.Write(rec)

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentType {
		t.Errorf("Content-Type = %q, want %q", ct, ContentType)
	}

	var got Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != BaseURI+"/not-found" {
		t.Errorf("Type = %q", got.Type)
	}
	if got.Detail != "entry not found" {
		t.Errorf("Detail = %q", got.Detail)
	}
}

func TestValidationErrorIncludesFields(t *testing.T) {
	p := ValidationError("invalid payload", []FieldError{
		{Field: "hours", Message: "must be between 0 and 24"},
	})

	if p.Status != 422 {
		t.Errorf("Status = %d, want 422", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0].Field != "hours" {
		t.Errorf("Errors = %+v", p.Errors)
	}
}

func TestConstructorStatuses(t *testing.T) {
	tests := []struct {
		name string
		p    *Problem
		want int
	}{
		{"bad request", BadRequest("x"), 400},
		{"conflict", Conflict("x"), 409},
		{"internal", InternalError("x"), 500},
		{"bad gateway", BadGateway("x"), 502},
		{"unavailable", ServiceUnavailable("x"), 503},
	}

	for _, tt := range tests {
		if tt.p.Status != tt.want {
			t.Errorf("%s: Status = %d, want %d", tt.name, tt.p.Status, tt.want)
		}
	}
}
