package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/izzat1998/exhibition-bot/internal/lead"
)

func testClient(url string) *Client {
	c := New(Config{BaseURL: url + "/", Token: "test-token"})
	return c
}

func TestCreateLeadRejectedDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Telegram-Bot-API-Token"); got != "test-token" {
			t.Errorf("auth header = %q", got)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail": "invalid phone"}`)
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).CreateLead(context.Background(), LeadPayload{TelegramID: "42"}, nil)
	if err != nil {
		t.Fatalf("CreateLead: %v", err)
	}
	if res.OK() {
		t.Fatal("expected rejected submission")
	}
	if res.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", res.Status)
	}
	if res.Detail != "invalid phone" {
		t.Errorf("detail = %q, expected %q", res.Detail, "invalid phone")
	}
}

func TestCreateLeadErrorKeyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error": "company required"}`)
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).CreateLead(context.Background(), LeadPayload{}, nil)
	if err != nil {
		t.Fatalf("CreateLead: %v", err)
	}
	if res.Detail != "company required" {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestCreateLeadJSONBody(t *testing.T) {
	var got LeadPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": 1}`)
	}))
	defer srv.Close()

	payload := LeadPayload{
		TelegramID:         "42",
		FullName:           "Jane Roe",
		ShipmentDirections: []int{3, 7},
	}
	res, err := testClient(srv.URL).CreateLead(context.Background(), payload, nil)
	if err != nil {
		t.Fatalf("CreateLead: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected accepted, status %d", res.Status)
	}
	if got.FullName != "Jane Roe" {
		t.Errorf("full_name = %q", got.FullName)
	}
	if len(got.ShipmentDirections) != 2 || got.ShipmentDirections[0] != 3 {
		t.Errorf("shipment_directions = %v", got.ShipmentDirections)
	}
}

func TestCreateLeadMultipartWithPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if dirs := r.MultipartForm.Value["shipment_directions"]; len(dirs) != 2 || dirs[1] != "7" {
			t.Errorf("shipment_directions = %v", dirs)
		}
		files := r.MultipartForm.File["business_card_photo"]
		if len(files) != 1 {
			t.Fatalf("photo parts = %d", len(files))
		}
		if files[0].Filename != "business_card.jpg" {
			t.Errorf("filename = %q", files[0].Filename)
		}
		f, err := files[0].Open()
		if err != nil {
			t.Fatalf("open photo: %v", err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if string(data) != "jpegbytes" {
			t.Errorf("photo body = %q", data)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	payload := LeadPayload{TelegramID: "42", ShipmentDirections: []int{3, 7}}
	res, err := testClient(srv.URL).CreateLead(context.Background(), payload, []byte("jpegbytes"))
	if err != nil {
		t.Fatalf("CreateLead: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected accepted, status %d", res.Status)
	}
}

func TestShipmentDirectionsEnvelope(t *testing.T) {
	bodies := []string{
		`{"results": [{"id": 1, "name": "China"}, {"id": 2, "name": "Europe"}]}`,
		`[{"id": 1, "name": "China"}, {"id": 2, "name": "Europe"}]`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		}))
		dirs, err := testClient(srv.URL).ShipmentDirections(context.Background())
		srv.Close()
		if err != nil {
			t.Fatalf("ShipmentDirections(%s): %v", body, err)
		}
		want := []lead.Direction{{ID: "1", Name: "China"}, {ID: "2", Name: "Europe"}}
		if len(dirs) != len(want) {
			t.Fatalf("directions = %v", dirs)
		}
		for i := range want {
			if dirs[i] != want[i] {
				t.Errorf("direction %d = %v, expected %v", i, dirs[i], want[i])
			}
		}
	}
}

func TestShipmentDirectionsSkipsIncomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id": 1, "name": "China"}, {"id": 2}, {"name": "Europe"}]`)
	}))
	defer srv.Close()

	dirs, err := testClient(srv.URL).ShipmentDirections(context.Background())
	if err != nil {
		t.Fatalf("ShipmentDirections: %v", err)
	}
	if len(dirs) != 1 || dirs[0].Name != "China" {
		t.Errorf("directions = %v", dirs)
	}
}

func TestBusinessCardOCR(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if len(r.MultipartForm.File["business_card_photo"]) != 1 {
			t.Error("expected photo part")
		}
		io.WriteString(w, `{"extracted_data": {"full_name": "Jane Roe", "phone": "+998 90 123 45 67"}}`)
	}))
	defer srv.Close()

	ext, err := testClient(srv.URL).BusinessCardOCR(context.Background(), []byte("jpegbytes"))
	if err != nil {
		t.Fatalf("BusinessCardOCR: %v", err)
	}
	if ext.FullName() != "Jane Roe" {
		t.Errorf("full_name = %q", ext.FullName())
	}
	if ext.Phone() != "+998 90 123 45 67" {
		t.Errorf("phone = %q", ext.Phone())
	}
}

func TestBusinessCardOCREmptyExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"extracted_data": {}}`)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).BusinessCardOCR(context.Background(), []byte("x")); err == nil {
		t.Fatal("expected error for empty extraction")
	}
}

func TestBusinessCardOCRFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).BusinessCardOCR(context.Background(), []byte("x")); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestLogin(t *testing.T) {
	for _, tc := range []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusNotFound, false},
		{http.StatusUnauthorized, false},
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]int64
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode: %v", err)
			}
			if body["telegram_id"] != 42 {
				t.Errorf("telegram_id = %d", body["telegram_id"])
			}
			w.WriteHeader(tc.status)
		}))
		ok, err := testClient(srv.URL).Login(context.Background(), 42)
		srv.Close()
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if ok != tc.want {
			t.Errorf("status %d: ok = %v", tc.status, ok)
		}
	}
}

func TestCompanies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id": 5, "name": "Interrail"}]`)
	}))
	defer srv.Close()

	companies, err := testClient(srv.URL).Companies(context.Background())
	if err != nil {
		t.Fatalf("Companies: %v", err)
	}
	if len(companies) != 1 || companies[0].ID != 5 || companies[0].Name != "Interrail" {
		t.Errorf("companies = %v", companies)
	}
}
