package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientStockError_Mensaje(t *testing.T) {
	err := &InsufficientStockError{ProductID: 42, Available: 3}
	assert.Equal(t, "stock insuficiente para producto 42. Disponible: 3", err.Error())
}

func TestInsufficientStockError_MatcheaSentinela(t *testing.T) {
	err := &InsufficientStockError{ProductID: 42, Available: 0}
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NotErrorIs(t, err, ErrNotFound)

	// El match sobrevive al wrapping.
	wrapped := fmt.Errorf("al transferir: %w", err)
	assert.ErrorIs(t, wrapped, ErrInsufficientStock)

	var target *InsufficientStockError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, int64(42), target.ProductID)
}
