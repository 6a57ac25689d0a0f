// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/ocial123/qr-event-app/internal/validation"
)

// IssueTokensRequest contains the parameters for issuing a batch of tokens.
type IssueTokensRequest struct {
	Count int    `json:"count"`
	Meta  string `json:"meta"`
}

// Validate checks if the issue tokens request is valid.
func (r *IssueTokensRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Count,
			validation.Required,
			validation.Min(1),
			validation.Max(10000),
		),
		validation.Field(&r.Meta,
			validation.Length(0, 255),
		),
	)
}

// RedeemTokenRequest contains the parameters for redeeming a single token.
type RedeemTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the redeem token request is valid.
func (r *RedeemTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}
