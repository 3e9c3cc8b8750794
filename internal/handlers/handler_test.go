package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func TestRespondErrorStatus(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &services.ValidationError{Field: "slug", Message: "taken"}, http.StatusBadRequest},
		{"not found", fmt.Errorf("movie x: %w", services.ErrNotFound), http.StatusNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"conflict", fmt.Errorf("you have already reviewed this show: %w", services.ErrConflict), http.StatusConflict},
		{"catalog off", catalog.ErrNotConfigured, http.StatusServiceUnavailable},
		{"storage off", services.ErrStorageDisabled, http.StatusServiceUnavailable},
		{"upstream", &services.UpstreamError{Err: errors.New("boom")}, http.StatusBadGateway},
		{"other", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, log, tt.err, "do it")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status=%d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, defaultPageSize},
		{"?page=3&limit=5", 3, 5},
		{"?page=-1&limit=0", 1, defaultPageSize},
		{"?limit=1000", 1, maxPageSize},
		{"?page=abc", 1, defaultPageSize},
	}
	for _, tt := range tests {
		app := fiber.New()
		var page, limit int
		app.Get("/", func(c *fiber.Ctx) error {
			page, limit = pagination(c)
			return nil
		})
		if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil), -1); err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Fatalf("%q: page=%d limit=%d, want %d %d", tt.query, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestParseDate(t *testing.T) {
	if parseDate(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
	empty := ""
	if parseDate(&empty) != nil {
		t.Fatalf("empty should be nil")
	}
	value := "2011-04-17"
	got := parseDate(&value)
	if got == nil || got.Year() != 2011 || got.Month() != 4 || got.Day() != 17 {
		t.Fatalf("parseDate=%v", got)
	}
}
