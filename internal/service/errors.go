package service

import (
	"errors"
	"fmt"

	"go_4_study_scheduler/internal/model"
)

// infraError reports a storage failure as retryable without leaking driver
// text to the client.
func infraError(message string, err error) *model.AppError {
	if !errors.Is(err, model.ErrInfrastructure) {
		err = fmt.Errorf("%w: %w", model.ErrInfrastructure, err)
	}
	return model.NewAppError("INFRASTRUCTURE_ERROR", message, "", err)
}

func missingOwnerError() *model.AppError {
	return model.NewAppError("MISSING_OWNER", "オーナーIDが必要です。", "", model.ErrMissingOwner)
}
