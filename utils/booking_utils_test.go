package utils

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewReferenceCode(t *testing.T) {
	pattern := regexp.MustCompile(`^DND-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewReferenceCode()
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "reference codes should not repeat: %s", code)
		seen[code] = true
	}
}

func TestParseSkipLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		query string
		skip  int
		limit int
	}{
		{name: "defaults", query: "", skip: 0, limit: 100},
		{name: "explicit", query: "?skip=20&limit=50", skip: 20, limit: 50},
		{name: "negative skip", query: "?skip=-5", skip: 0, limit: 100},
		{name: "zero limit", query: "?limit=0", skip: 0, limit: 100},
		{name: "limit cap", query: "?limit=9999", skip: 0, limit: 100},
		{name: "garbage", query: "?skip=abc&limit=xyz", skip: 0, limit: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/bookings"+tc.query, nil)

			skip, limit := ParseSkipLimit(c)
			assert.Equal(t, tc.skip, skip)
			assert.Equal(t, tc.limit, limit)
		})
	}
}
