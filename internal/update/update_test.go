package update

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.0", "1.2.0", 0},
		{"v1.2.0", "1.2", 0},
		{"1.10.0", "1.9.9", 1},
		{"0.9", "1.0.0", -1},
		{"2.0.0-beta.1", "2.0.0", 0},
		{"1.0.1+build5", "1.0.0", 1},
	}

	for _, tt := range tests {
		got, err := Compare(tt.a, tt.b)
		if err != nil {
			t.Errorf("Compare(%q, %q): %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareRejectsGarbage(t *testing.T) {
	for _, v := range []string{"", "v", "1.x", "1..2", "-1"} {
		if _, err := Compare(v, "1.0.0"); err == nil {
			t.Errorf("expected error for %q", v)
		}
	}
}

func serve(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestCheckAvailable(t *testing.T) {
	srv := serve(http.StatusOK, `{"version":"1.3.0","notes":"new presets"}`)
	defer srv.Close()

	res, err := Check(context.Background(), srv.Client(), srv.URL, "1.2.0")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.Available || res.Latest != "1.3.0" || res.Notes != "new presets" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCheckUpToDate(t *testing.T) {
	srv := serve(http.StatusOK, `{"version":"1.2.0"}`)
	defer srv.Close()

	res, err := Check(context.Background(), srv.Client(), srv.URL, "1.2.0")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Available {
		t.Error("same version should not be available")
	}
}

func TestCheckUnreachable(t *testing.T) {
	notFound := serve(http.StatusNotFound, "")
	defer notFound.Close()

	closed := serve(http.StatusOK, "")
	closedURL := closed.URL
	closed.Close()

	for name, url := range map[string]string{
		"404":       notFound.URL,
		"no url":    "",
		"no server": closedURL,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Check(context.Background(), http.DefaultClient, url, "1.0.0")
			if !errors.Is(err, ErrUnreachable) {
				t.Errorf("expected ErrUnreachable, got %v", err)
			}
		})
	}
}

func TestCheckHardErrors(t *testing.T) {
	tests := map[string]*httptest.Server{
		"server error": serve(http.StatusInternalServerError, "boom"),
		"bad json":     serve(http.StatusOK, "{"),
		"bad version":  serve(http.StatusOK, `{"version":"latest"}`),
	}

	for name, srv := range tests {
		t.Run(name, func(t *testing.T) {
			defer srv.Close()
			_, err := Check(context.Background(), srv.Client(), srv.URL, "1.0.0")
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrUnreachable) {
				t.Errorf("%s should be a hard error, got %v", name, err)
			}
		})
	}
}
