package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrReviewInspectionCommandIsNotConstructed = errors.New(
	"ReviewInspectionCommand must be created via NewReviewInspectionCommand constructor",
)

// ReviewInspectionCommand is the second signature on a completed inspection.
// The reviewer is checked against the inspector by the inspection (BR-12).
type ReviewInspectionCommand struct {
	inspectionID kernel.UUID
	reviewerID   string

	guard guard.ConstructorGuard
}

func NewReviewInspectionCommand(inspectionID kernel.UUID, reviewerID string) (ReviewInspectionCommand, error) {
	cmd := ReviewInspectionCommand{
		reviewerID: reviewerID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := setID(&cmd.inspectionID, "inspection id", inspectionID); err != nil {
		return ReviewInspectionCommand{}, err
	}

	return cmd, nil
}

func (c ReviewInspectionCommand) Validate() error {
	return c.guard.Validate(ErrReviewInspectionCommandIsNotConstructed)
}

func (c ReviewInspectionCommand) InspectionID() kernel.UUID { return c.inspectionID }
func (c ReviewInspectionCommand) ReviewerID() string { return c.reviewerID }
