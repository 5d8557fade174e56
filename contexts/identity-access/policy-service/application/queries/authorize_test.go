package queries

import (
	"context"
	"errors"
	"testing"

	domainerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func TestGuardMapsDecisionsToErrors(t *testing.T) {
	guard := Guard{}

	if err := guard.Authorize(context.Background(), "admin-1", "admin", "award.create", "award", "", ""); err != nil {
		t.Fatalf("expected admin award create to pass, got %v", err)
	}

	err := guard.Authorize(context.Background(), "author-1", "author", "award.create", "award", "", "")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	err = guard.Authorize(context.Background(), "", "", "project.read", "project", "", "")
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	err = guard.Authorize(context.Background(), "admin-1", "admin", "award.archive", "award", "", "")
	if !errors.Is(err, domainerrors.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}
