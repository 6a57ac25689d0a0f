package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
	tokenUseCase "github.com/ocial123/qr-event-app/internal/token/usecase"
)

// RunIssueTokens issues a batch of single-use redemption tokens and prints
// their values, one per line in text mode or as a JSON array. The batch is
// all-or-nothing, a failure leaves no tokens behind.
//
// Requirements: Database must be migrated and accessible.
func RunIssueTokens(
	ctx context.Context,
	useCase tokenUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	count int,
	meta string,
	format string,
) error {
	// Validate count parameter
	if count <= 0 {
		return fmt.Errorf("count must be a positive number, got: %d", count)
	}

	logger.Info("issuing tokens",
		slog.Int("count", count),
		slog.String("meta", meta),
	)

	output, err := useCase.Issue(ctx, &tokenDomain.IssueInput{
		Count: count,
		Meta:  meta,
	})
	if err != nil {
		return fmt.Errorf("failed to issue tokens: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputIssueTokensJSON(output.Tokens, meta, writer)
	} else {
		outputIssueTokensText(output.Tokens, writer)
	}

	logger.Info("tokens issued successfully",
		slog.Int("count", len(output.Tokens)),
	)

	return nil
}

// outputIssueTokensText outputs the issued token values one per line.
func outputIssueTokensText(tokens []string, writer io.Writer) {
	_, _ = fmt.Fprintf(writer, "Issued %d token(s):\n", len(tokens))
	for _, token := range tokens {
		_, _ = fmt.Fprintln(writer, token)
	}
}

// outputIssueTokensJSON outputs the result in JSON format for machine consumption.
func outputIssueTokensJSON(tokens []string, meta string, writer io.Writer) {
	result := map[string]interface{}{
		"count":  len(tokens),
		"meta":   meta,
		"tokens": tokens,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
