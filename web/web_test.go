package web

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPagesRender(t *testing.T) {
	var candidates = []struct {
		path   string
		marker string
	}{
		{"/", "Bringing Hope to Children in Need"},
		{"/about", "About Care4Youth"},
		{"/programs", "Wish Fulfillment"},
		{"/volunteer", "Mentorship Program"},
		{"/donate", "Hope Builder"},
	}

	handler := NewWeb(false).Handler()

	for _, c := range candidates {
		req := httptest.NewRequest("GET", c.path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != 200 {
			t.Fatalf("%s: wanted 200, got %d", c.path, w.Code)
		}
		if !strings.Contains(w.Body.String(), c.marker) {
			t.Fatalf("%s: page should contain %q", c.path, c.marker)
		}
	}
}

func TestDonatePageShowsTiers(t *testing.T) {
	handler := NewWeb(false).Handler()
	req := httptest.NewRequest("GET", "/donate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	body := w.Body.String()
	for _, amount := range []string{"$25", "$50", "$100", "$250"} {
		if !strings.Contains(body, amount) {
			t.Fatalf("Donate page should show the %s tier", amount)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	handler := NewWeb(false).Handler()

	for _, p := range []string{"/static/style.css", "/manifest.json", "/sw.js"} {
		req := httptest.NewRequest("GET", p, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != 200 {
			t.Fatalf("%s: wanted 200, got %d", p, w.Code)
		}
	}
}
