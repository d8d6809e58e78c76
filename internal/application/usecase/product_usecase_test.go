package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

func TestProductCreate_PrecioNegativo_EsInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "hat",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_InventarioNegativo_EsInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:      "hat",
		Price:     decimal.NewFromInt(15),
		Inventory: -5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_NombreDuplicado_RetornaConflicto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{Name: "hat", Price: decimal.NewFromInt(15)})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "hat", Price: decimal.NewFromInt(20)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.byID, 1, "no debe crearse una segunda fila con el mismo nombre")
}

func TestProductUpdate_SoloCamposEnviados(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:        "laptop",
		Description: "Gaming Laptop",
		Price:       decimal.NewFromInt(500),
		Inventory:   15,
		Category:    "electronics",
	})
	require.NoError(t, err)

	newInventory := 10
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Inventory: &newInventory})
	require.NoError(t, err)

	assert.Equal(t, 10, out.Inventory)
	assert.Equal(t, "laptop", out.Name, "los campos no enviados quedan como estaban")
	assert.True(t, decimal.NewFromInt(500).Equal(out.Price))
}

func TestProductUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "lamp"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "el handler traduce nil a 404")
}

func TestProductDelete_EsIdempotente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{Name: "shoes", Price: decimal.NewFromInt(75)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	// Repetir el borrado no es error: mismo resultado en cada intento.
	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, repo.byID)
}
