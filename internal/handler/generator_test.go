package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func newGeneratorHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleGenerate_Defaults(t *testing.T) {
	rec := postJSON(t, newGeneratorHandler().HandleGenerate, `{}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body)
	}

	var resp model.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Length != 12 || resp.Count != 1 {
		t.Errorf("expected length 12 count 1, got %+v", resp)
	}
	if len(resp.Passwords) != 1 || len(resp.Passwords[0]) != 12 {
		t.Errorf("expected one 12-character password, got %v", resp.Passwords)
	}
}

func TestHandleGenerate_MultipleWithOptions(t *testing.T) {
	rec := postJSON(t, newGeneratorHandler().HandleGenerate,
		`{"length": 20, "count": 3, "symbols": false, "exclude": "0O1l"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body)
	}

	var resp model.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Passwords) != 3 {
		t.Fatalf("expected 3 passwords, got %d", len(resp.Passwords))
	}
	for _, pw := range resp.Passwords {
		if len(pw) != 20 {
			t.Errorf("password %q has length %d, want 20", pw, len(pw))
		}
		if strings.ContainsAny(pw, "0O1l") {
			t.Errorf("password %q contains excluded character", pw)
		}
	}
}

func TestHandleGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative length", `{"length": -1}`},
		{"length too long", `{"length": 9999}`},
		{"no classes", `{"lowercase": false, "uppercase": false, "digits": false, "symbols": false}`},
		{"empty pool", `{"lowercase": false, "uppercase": false, "symbols": false, "exclude": "0123456789"}`},
		{"too many passwords", `{"count": 1001}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newGeneratorHandler().HandleGenerate, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response JSON: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected error message in response")
			}
		})
	}
}

func TestHandleGenerate_MalformedBody(t *testing.T) {
	rec := postJSON(t, newGeneratorHandler().HandleGenerate, `{"length": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
