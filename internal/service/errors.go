package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rapidhub/rapidhub/internal/repository"
	"github.com/rapidhub/rapidhub/pkg/apierror"
)

// storeError translates repository sentinels into typed errors; anything
// unrecognized is wrapped as a processing failure.
func storeError(resource string, err error) error {
	lower := strings.ToLower(resource)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apierror.Wrap(resource, apierror.CodeNotFound, fmt.Sprintf("%s not found", lower), err)
	case errors.Is(err, repository.ErrDuplicate):
		return apierror.Wrap(resource, apierror.CodeDuplicateID, fmt.Sprintf("an active %s with this external id already exists", lower), err)
	case errors.Is(err, repository.ErrAlreadyActive):
		return apierror.Wrap(resource, apierror.CodeAlreadyActive, fmt.Sprintf("the %s is already active", lower), err)
	}
	return apierror.Wrap(resource, apierror.CodeProcessingError, "storage operation failed", err)
}
