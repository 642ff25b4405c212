package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silktrader/statuary/pkg/content"
)

func TestGetPage(t *testing.T) {
	tests := []struct {
		query    string
		expected content.Page
		invalid  bool
	}{
		{"", content.Page{Limit: DefaultLimit}, false},
		{"?limit=10", content.Page{Limit: 10}, false},
		{"?limit=0&offset=3", content.Page{Limit: 0, Offset: 3}, false},
		{"?offset=7", content.Page{Limit: DefaultLimit, Offset: 7}, false},
		{"?limit=-1", content.Page{}, true},
		{"?offset=-4", content.Page{}, true},
		{"?limit=ten", content.Page{}, true},
		{"?limit=5&offset=1.5", content.Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, err := GetPage(httptest.NewRequest(http.MethodGet, "/annotations"+tt.query, nil))
			if tt.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}
