package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func parseIDParam(r *http.Request) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(parsed), nil
}

// parsePage reads page/limit query params, returning the offset the page
// implies. Page numbering starts at 1.
func parsePage(query url.Values, defaultLimit int) (page, limit, offset int, err error) {
	page, err = parsePositiveInt(query.Get("page"), 1)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid page")
	}
	limit, err = parsePositiveInt(query.Get("limit"), defaultLimit)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid limit")
	}
	return page, limit, (page - 1) * limit, nil
}

func parsePositiveInt(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

func parseOptionalUint(value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid int")
	}
	return uint(parsed), nil
}
