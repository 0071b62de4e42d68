package dynamo

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

const serviceName = "dynamodb"

// Error codes that mean the table cannot serve requests right now.
var unavailableCodes = map[string]bool{
	"ResourceNotFoundException":              true,
	"ProvisionedThroughputExceededException": true,
	"RequestLimitExceeded":                   true,
	"ThrottlingException":                    true,
	"InternalServerError":                    true,
	"ServiceUnavailable":                     true,
}

// mapError wraps SDK errors with the operation name. Throttling and missing
// tables become domain.ErrUnavailable; everything else stays an internal
// error.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && unavailableCodes[apiErr.ErrorCode()] {
		return fmt.Errorf("%s: %w", op, domain.NewUnavailableError(serviceName, apiErr.ErrorMessage()))
	}

	return fmt.Errorf("dynamodb %s: %w", op, err)
}

func isResourceNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException"
}
