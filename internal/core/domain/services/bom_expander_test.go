package services_test

import (
	"context"
	"errors"
	"testing"

	"automfg/internal/core/domain/services"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBomCatalog struct {
	mock.Mock
}

func (m *MockBomCatalog) RequirementsFor(ctx context.Context, modelCode string, optionCodes []string) ([]ports.PartRequirement, error) {
	args := m.Called(ctx, modelCode, optionCodes)
	return args.Get(0).([]ports.PartRequirement), args.Error(1)
}

type MockMaterialAvailability struct {
	mock.Mock
}

func (m *MockMaterialAvailability) CheckAvailability(ctx context.Context, partNumber string, quantity int) (bool, error) {
	args := m.Called(ctx, partNumber, quantity)
	return args.Bool(0), args.Error(1)
}

func TestBomExpander_Expand(t *testing.T) {
	requirements := []ports.PartRequirement{
		{PartNumber: "CHS-001", Description: "Chassis", Quantity: 1, UnitOfMeasure: "EA"},
		{PartNumber: "WHL-001", Description: "Wheel", Quantity: 4, UnitOfMeasure: "EA"},
	}

	t.Run("should capture availability of every part", func(t *testing.T) {
		ctx := t.Context()
		catalog := &MockBomCatalog{}
		availability := &MockMaterialAvailability{}
		options := []string{"AUTOPILOT"}

		catalog.On("RequirementsFor", ctx, "MODEL-S", options).Return(requirements, nil).Once()
		availability.On("CheckAvailability", ctx, "CHS-001", 1).Return(true, nil).Once()
		availability.On("CheckAvailability", ctx, "WHL-001", 4).Return(false, nil).Once()

		bom, err := services.NewBomExpander(catalog, availability).Expand(ctx, "MODEL-S", options)

		require.NoError(t, err)
		require.Len(t, bom.Items(), 2)
		assert.Equal(t, 4, bom.Items()[1].Quantity())
		assert.False(t, bom.IsFullyAvailable())
		assert.Equal(t, []string{"WHL-001"}, bom.MissingParts())
		assert.False(t, bom.SnapshotDate().IsZero())
		catalog.AssertExpectations(t)
		availability.AssertExpectations(t)
	})

	t.Run("should reject an empty bill of materials", func(t *testing.T) {
		ctx := t.Context()
		catalog := &MockBomCatalog{}
		catalog.On("RequirementsFor", ctx, "MODEL-Z", []string(nil)).Return([]ports.PartRequirement{}, nil).Once()

		_, err := services.NewBomExpander(catalog, &MockMaterialAvailability{}).Expand(ctx, "MODEL-Z", nil)

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.ErrorIs(t, err, services.ErrEmptyBom)
	})

	t.Run("should return availability errors", func(t *testing.T) {
		ctx := t.Context()
		catalog := &MockBomCatalog{}
		availability := &MockMaterialAvailability{}
		gatewayErr := errors.New("inventory offline")

		catalog.On("RequirementsFor", ctx, "MODEL-S", []string(nil)).Return(requirements, nil).Once()
		availability.On("CheckAvailability", ctx, "CHS-001", 1).Return(false, gatewayErr).Once()

		_, err := services.NewBomExpander(catalog, availability).Expand(ctx, "MODEL-S", nil)

		require.ErrorIs(t, err, gatewayErr)
		availability.AssertNotCalled(t, "CheckAvailability", ctx, "WHL-001", 4)
	})
}
