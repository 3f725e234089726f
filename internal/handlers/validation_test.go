package handlers

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidationMessages(t *testing.T) {
	validate := newValidator()

	tests := []struct {
		name     string
		product  models.Product
		expected []string
	}{
		{
			name:    "valid product has no messages",
			product: models.Product{Name: "papel", Description: "Papel reciclado", Stock: 10, Price: 3.75, PresentationID: 2},
		},
		{
			name:    "empty name",
			product: models.Product{Name: "", Description: "ok", Stock: 1, Price: 1},
			expected: []string{
				"the product name cannot be empty",
			},
		},
		{
			name:    "name too short",
			product: models.Product{Name: "abc", Description: "ok", Stock: 1, Price: 1},
			expected: []string{
				"the product name cannot have fewer than 4 or more than 25 characters",
			},
		},
		{
			name:    "name too long",
			product: models.Product{Name: "this product name is way too long", Description: "ok", Stock: 1, Price: 1},
			expected: []string{
				"the product name cannot have fewer than 4 or more than 25 characters",
			},
		},
		{
			name:    "blank description",
			product: models.Product{Name: "papel", Description: "   ", Stock: 1, Price: 1},
			expected: []string{
				"the product description is required",
			},
		},
		{
			name:    "every rule violated at once",
			product: models.Product{Name: "abc", Description: "", Stock: -1, Price: -5},
			expected: []string{
				"the product name cannot have fewer than 4 or more than 25 characters",
				"the product description is required",
				"the stock cannot be less than zero",
				"the price cannot be negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.product)
			if len(tt.expected) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, productValidationMessages(err))
		})
	}
}

func TestZeroStockAndPriceAreValid(t *testing.T) {
	validate := newValidator()
	product := models.Product{Name: "papel", Description: "Papel reciclado", Stock: 0, Price: 0}
	assert.NoError(t, validate.Struct(product))
}
