package repositories_test

import (
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory SQLite database for one test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Presentation{}, &models.Product{}))
	return db
}

// seedCatalog stores two presentations and three products with deliberately
// unsorted names.
func seedCatalog(t *testing.T, db *gorm.DB) (repositories.ProductRepository, repositories.PresentationRepository) {
	t.Helper()
	productRepo := repositories.NewGORMProductRepository(db)
	presentationRepo := repositories.NewGORMPresentationRepository(db)

	presentations := []models.Presentation{{Name: "unit"}, {Name: "dozen"}}
	for i := range presentations {
		require.NoError(t, presentationRepo.Create(&presentations[i]))
	}

	products := []models.Product{
		{Name: "Sudaderas", Description: "Sudaderas de flores", Stock: 5, Price: 45.00, PresentationID: presentations[0].ID},
		{Name: "Bufandas", Description: "Bufandas hechas a mano", Stock: 7, Price: 25.00, PresentationID: presentations[0].ID},
		{Name: "Ordenador", Description: "Portátiles 14 pulgadas", Stock: 3, Price: 980.00, PresentationID: presentations[1].ID},
	}
	for i := range products {
		require.NoError(t, productRepo.Create(&products[i]))
	}
	return productRepo, presentationRepo
}

func TestGORMProductRepository_GetAllSortedWithPresentation(t *testing.T) {
	db := setupDB(t)
	repo, _ := seedCatalog(t, db)

	products, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Bufandas", products[0].Name)
	assert.Equal(t, "Ordenador", products[1].Name)
	assert.Equal(t, "Sudaderas", products[2].Name)

	for _, p := range products {
		require.NotNil(t, p.Presentation, "presentation must be resolved inline for %s", p.Name)
		assert.Equal(t, p.PresentationID, p.Presentation.ID)
	}
}

func TestGORMProductRepository_GetPage(t *testing.T) {
	db := setupDB(t)
	repo, _ := seedCatalog(t, db)

	// First page is a prefix of the name-sorted sequence.
	page, err := repo.GetPage(0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Bufandas", page[0].Name)
	assert.Equal(t, "Ordenador", page[1].Name)
	assert.NotNil(t, page[0].Presentation)

	// Last partial page.
	page, err = repo.GetPage(1, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Sudaderas", page[0].Name)

	// Pages beyond the data are empty, not an error.
	page, err = repo.GetPage(5, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestGORMProductRepository_GetByID(t *testing.T) {
	db := setupDB(t)
	repo, _ := seedCatalog(t, db)

	products, err := repo.GetAll()
	require.NoError(t, err)

	product, err := repo.GetByID(products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, products[0].Name, product.Name)
	require.NotNil(t, product.Presentation)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProductRepository_CreateAssignsIDAndReloads(t *testing.T) {
	db := setupDB(t)
	repo, _ := seedCatalog(t, db)

	product := models.Product{Name: "Pecera", Description: "Pecera de gran tamaño", Stock: 7, Price: 120.75, PresentationID: 1}
	require.NoError(t, repo.Create(&product))

	assert.NotZero(t, product.ID)
	require.NotNil(t, product.Presentation, "create must return the product with its presentation resolved")
	assert.Equal(t, product.PresentationID, product.Presentation.ID)
}

func TestGORMProductRepository_UpdateOverwrites(t *testing.T) {
	db := setupDB(t)
	repo, _ := seedCatalog(t, db)

	products, err := repo.GetAll()
	require.NoError(t, err)
	target := products[0]

	updated := models.Product{
		ID:             target.ID,
		Name:           "Bufandas lana",
		Description:    "Bufandas de lana merina",
		Stock:          0,
		Price:          30.00,
		PresentationID: target.PresentationID,
	}
	require.NoError(t, repo.Update(&updated))

	stored, err := repo.GetByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bufandas lana", stored.Name)
	assert.Equal(t, 0, stored.Stock, "full overwrite must persist zero values too")
	assert.Equal(t, 30.00, stored.Price)

	// Updating a row that does not exist reports not-found.
	missing := models.Product{ID: 9999, Name: "Inexistente", Description: "x", PresentationID: target.PresentationID}
	assert.ErrorIs(t, repo.Update(&missing), repositories.ErrNotFound)
}

func TestGORMProductRepository_DeleteGuarded(t *testing.T) {
	db := setupDB(t)
	repo, _ := seedCatalog(t, db)

	products, err := repo.GetAll()
	require.NoError(t, err)

	require.NoError(t, repo.Delete(products[0].ID))

	_, err = repo.GetByID(products[0].ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Deleting a missing id is a reported no-op, never an unguarded delete.
	assert.ErrorIs(t, repo.Delete(products[0].ID), repositories.ErrNotFound)
}

func TestGORMPresentationRepository_DeleteCascade(t *testing.T) {
	db := setupDB(t)
	productRepo, presentationRepo := seedCatalog(t, db)

	presentations, err := presentationRepo.GetAll()
	require.NoError(t, err)

	var unit models.Presentation
	for _, p := range presentations {
		if p.Name == "unit" {
			unit = p
		}
	}
	require.NotZero(t, unit.ID)

	require.NoError(t, presentationRepo.DeleteCascade(unit.ID))

	// Both products referencing "unit" are gone; the one on "dozen" survives.
	remaining, err := productRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Ordenador", remaining[0].Name)

	_, err = presentationRepo.GetByID(unit.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Cascade on a missing presentation is not-found, not a fault.
	assert.ErrorIs(t, presentationRepo.DeleteCascade(unit.ID), repositories.ErrNotFound)
}
