package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueTokensRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   IssueTokensRequest
		shouldErr bool
	}{
		{
			name:    "valid request",
			request: IssueTokensRequest{Count: 10, Meta: "gate-A"},
		},
		{
			name:    "meta is optional",
			request: IssueTokensRequest{Count: 1},
		},
		{
			name:      "zero count",
			request:   IssueTokensRequest{Count: 0},
			shouldErr: true,
		},
		{
			name:      "negative count",
			request:   IssueTokensRequest{Count: -1},
			shouldErr: true,
		},
		{
			name:      "count over batch cap",
			request:   IssueTokensRequest{Count: 10001},
			shouldErr: true,
		},
		{
			name:      "meta too long",
			request:   IssueTokensRequest{Count: 1, Meta: strings.Repeat("x", 256)},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRedeemTokenRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RedeemTokenRequest{Token: "some-token"}).Validate())
	assert.Error(t, (&RedeemTokenRequest{}).Validate())
	assert.Error(t, (&RedeemTokenRequest{Token: "   "}).Validate())
}
