package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// storeError wraps a store failure for the caller. Transient failures
// (retry budget exhausted, deadline expired) become Unavailable so clients
// can tell a retryable condition from a broken one.
func storeError(op string, err error) error {
	if errors.Is(err, model.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return apierror.NewUnavailable("service temporarily unavailable, please retry")
	}
	return fmt.Errorf("%s: %w", op, err)
}
