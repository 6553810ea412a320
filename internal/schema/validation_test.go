package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func findFieldError(body ValidationErrorBody, field string) (FieldError, bool) {
	for _, fe := range body.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

func TestNewValidationErrorBody_FromValidator(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(TaskCreate{Status: "archived"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	body := NewValidationErrorBody(err, "/api/v1/tasks/")
	if body.Success {
		t.Error("Success = true, want false")
	}
	if body.Message != "Validation error" {
		t.Errorf("Message = %q, want %q", body.Message, "Validation error")
	}
	if body.Path != "/api/v1/tasks/" {
		t.Errorf("Path = %q, want %q", body.Path, "/api/v1/tasks/")
	}
	if len(body.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %+v", len(body.Errors), body.Errors)
	}

	title, ok := findFieldError(body, "title")
	if !ok {
		t.Fatalf("no error for field title: %+v", body.Errors)
	}
	if title.Type != "required" {
		t.Errorf("title.Type = %q, want %q", title.Type, "required")
	}
	if title.Message != "This field is required" {
		t.Errorf("title.Message = %q, want %q", title.Message, "This field is required")
	}

	status, ok := findFieldError(body, "status")
	if !ok {
		t.Fatalf("no error for field status: %+v", body.Errors)
	}
	if status.Type != "oneof" {
		t.Errorf("status.Type = %q, want %q", status.Type, "oneof")
	}
	if status.Message != "Must be one of: pending, in_progress, completed, cancelled" {
		t.Errorf("status.Message = %q", status.Message)
	}
}

func TestNewValidationErrorBody_LengthMessages(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(ListQuery{Search: "ab"})
	body := NewValidationErrorBody(err, "/characters/")
	search, ok := findFieldError(body, "search")
	if !ok {
		t.Fatalf("no error for field search: %+v", body.Errors)
	}
	if search.Message != "Must be at least 3 characters" {
		t.Errorf("search.Message = %q", search.Message)
	}

	err = v.Struct(JutsuCreate{Name: "ok", Type: "t", ChakraCost: intPtr(0)})
	body = NewValidationErrorBody(err, "/jutsus/")
	cost, ok := findFieldError(body, "chakra_cost")
	if !ok {
		t.Fatalf("no error for field chakra_cost: %+v", body.Errors)
	}
	if cost.Message != "Must be at least 1" {
		t.Errorf("chakra_cost.Message = %q", cost.Message)
	}
}

func TestNewValidationErrorBody_NonValidator(t *testing.T) {
	body := NewValidationErrorBody(errors.New("unexpected EOF"), "/api/v1/tasks/")
	if len(body.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(body.Errors))
	}
	if body.Errors[0].Field != "body" {
		t.Errorf("Field = %q, want %q", body.Errors[0].Field, "body")
	}
	if body.Errors[0].Type != "invalid" {
		t.Errorf("Type = %q, want %q", body.Errors[0].Type, "invalid")
	}
	if body.Errors[0].Message != "unexpected EOF" {
		t.Errorf("Message = %q, want %q", body.Errors[0].Message, "unexpected EOF")
	}
}

func TestValidationErrorBody_JSONShape(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(CharacterCreate{})
	body := NewValidationErrorBody(err, "/characters/")

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"success":false`, `"message":"Validation error"`, `"errors":[`, `"path":"/characters/"`, `"field"`, `"type"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("json %s missing %s", data, key)
		}
	}
}
