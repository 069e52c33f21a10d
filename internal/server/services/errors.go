package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
)

var passthrough = []error{
	common.ErrorNotFound,
	common.ErrorInvalidInput,
	common.ErrorDuplicateIdentity,
	common.ErrorInvalidCredentials,
	common.ErrorUnauthenticated,
	common.ErrorInternal,
	context.Canceled,
	context.DeadlineExceeded,
}

// collapse returns err unchanged when it is one of the public sentinels and
// common.ErrorInternal otherwise, logging the cause.
func collapse(ctx context.Context, log logging.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	for _, s := range passthrough {
		if errors.Is(err, s) {
			return s
		}
	}
	log.Error(ctx, "unexpected error", "op", op, "error", err)
	return common.ErrorInternal
}
