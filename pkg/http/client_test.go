package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type testResponse struct {
	Name string `json:"name"`
}

type testError struct {
	Message string `json:"message"`
}

func newTestClient(baseURL string) *Client {
	return NewHttpClient(baseURL, ClientOptions{
		ConnectionTimeout: time.Second,
		ReadTimeout:       time.Second,
	})
}

func TestGetDecodesSuccessResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"London"}`))
	}))
	defer server.Close()

	var success testResponse
	_, _, status, err := newTestClient(server.URL).Get("/cities", nil, nil, &success, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if success.Name != "London" {
		t.Errorf("expected name London, got %q", success.Name)
	}
}

func TestGetEncodesQueryParams(t *testing.T) {
	var gotQuery string
	var gotRawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotRawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, _, _, err := newTestClient(server.URL).Get("/search", map[string]string{"q": "New York"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "New York" {
		t.Errorf("expected query param 'New York', got %q", gotQuery)
	}
	if strings.Contains(gotRawQuery, " ") {
		t.Errorf("expected encoded query string, got %q", gotRawQuery)
	}
}

func TestErrorStatusDecodesErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	var errBody testError
	_, errorResp, status, err := newTestClient(server.URL).Get("/fail", nil, nil, nil, &errBody)
	if err == nil {
		t.Fatal("expected an error for status 500")
	}
	if status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", status)
	}
	if errorResp == nil || errBody.Message != "boom" {
		t.Errorf("expected decoded error body, got %+v", errBody)
	}
}

func TestDismiss404ReturnsNoError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Dismiss404: true})
	_, _, status, err := client.Get("/missing", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("expected dismissed 404, got error: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", status)
	}
}

func TestTransportFailureReturnsZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, _, status, err := newTestClient(server.URL).Get("/", nil, nil, nil, nil)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if status != 0 {
		t.Errorf("expected status 0, got %d", status)
	}
}

func TestUnmarshalXMLResponseWithCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=ISO-8859-1")
		_, _ = w.Write([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><city><name>S\xe3o Paulo</name></city>"))
	}))
	defer server.Close()

	var city struct {
		Name string `xml:"name"`
	}
	_, _, _, err := newTestClient(server.URL).Get("/city", nil, nil, &city, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city.Name != "São Paulo" {
		t.Errorf("expected charset-decoded name, got %q", city.Name)
	}
}

func TestRequestBuilderExecute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"name":"thing"`) {
			t.Errorf("unexpected request body: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"created"}`))
	}))
	defer server.Close()

	var success testResponse
	_, _, status, err := newTestClient(server.URL).Request().
		WithMethod(POST).
		WithPath("/things").
		WithBody(map[string]string{"name": "thing"}).
		WithSuccessResp(&success).
		Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if success.Name != "created" {
		t.Errorf("expected decoded response, got %+v", success)
	}
}
