package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ocial123/qr-event-app/internal/httputil"
)

func TestParseLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		url           string
		defaultLimit  int
		expectedLimit int
		expectError   bool
		errorMsg      string
	}{
		{
			name:          "default value",
			url:           "/",
			defaultLimit:  50,
			expectedLimit: 50,
			expectError:   false,
		},
		{
			name:          "valid custom value",
			url:           "/?limit=20",
			defaultLimit:  50,
			expectedLimit: 20,
			expectError:   false,
		},
		{
			name:          "max limit",
			url:           "/?limit=100",
			defaultLimit:  50,
			expectedLimit: 100,
			expectError:   false,
		},
		{
			name:         "limit zero",
			url:          "/?limit=0",
			defaultLimit: 50,
			expectError:  true,
			errorMsg:     "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:         "limit exceeds max",
			url:          "/?limit=101",
			defaultLimit: 50,
			expectError:  true,
			errorMsg:     "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:         "limit not an integer",
			url:          "/?limit=xyz",
			defaultLimit: 50,
			expectError:  true,
			errorMsg:     "invalid limit parameter: must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			limit, err := httputil.ParseLimit(c, tt.defaultLimit)

			if tt.expectError {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.errorMsg)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
