// Command seed loads the sample catalog into the configured database. It is
// a one-shot program, kept out of the server's runtime: run it once against a
// fresh database and exit.
package main

import (
	"log"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

func main() {
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "catalog.db?_foreign_keys=on")
	viper.AutomaticEnv()

	var db *gorm.DB
	var err error
	switch viper.GetString("DB_DRIVER") {
	case "postgres":
		db, err = gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Presentation{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	presentationService := services.NewPresentationService(repositories.NewGORMPresentationRepository(db))
	productService := services.NewProductService(repositories.NewGORMProductRepository(db), nil)

	presentations := []models.Presentation{
		{Name: "unit"},
		{Name: "dozen"},
	}
	for i := range presentations {
		if err := presentationService.CreatePresentation(&presentations[i]); err != nil {
			log.Fatalf("Failed to seed presentation %s: %v", presentations[i].Name, err)
		}
		log.Printf("Seeded presentation: %s (ID: %d)", presentations[i].Name, presentations[i].ID)
	}
	unit, dozen := presentations[0].ID, presentations[1].ID

	products := []models.Product{
		{Name: "papel", Description: "Papel reciclado", Stock: 10, Price: 3.75, PresentationID: dozen},
		{Name: "Pelota baloncesto", Description: "Pelotas de reglamento", Stock: 12, Price: 35.50, PresentationID: unit},
		{Name: "Bolígrafos", Description: "Bolígrafos de colores fantasía", Stock: 120, Price: 2.25, PresentationID: dozen},
		{Name: "Zapatillas danza", Description: "Zapatillas de planta partida", Stock: 15, Price: 175.25, PresentationID: unit},
		{Name: "Sudaderas", Description: "Sudaderas de flores", Stock: 5, Price: 45.00, PresentationID: unit},
		{Name: "Refresco energético", Description: "Refresco en latas", Stock: 14, Price: 5.25, PresentationID: dozen},
		{Name: "Gomas de borrar", Description: "Gomas de borrar con formas de animales", Stock: 6, Price: 1.50, PresentationID: dozen},
		{Name: "Bufandas", Description: "Bufandas hechas a mano", Stock: 7, Price: 25.00, PresentationID: unit},
		{Name: "Ordenador", Description: "Portátiles 14 pulgadas", Stock: 3, Price: 980.00, PresentationID: unit},
		{Name: "Ratón", Description: "Ratón inalámbrico de colores", Stock: 2, Price: 20.00, PresentationID: dozen},
		{Name: "Pecera", Description: "Pecera de gran tamaño con purificador de agua", Stock: 7, Price: 120.75, PresentationID: unit},
	}
	for i := range products {
		if err := productService.CreateProduct(&products[i]); err != nil {
			log.Fatalf("Failed to seed product %s: %v", products[i].Name, err)
		}
		log.Printf("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
	}

	log.Printf("Seed complete: %d presentations, %d products", len(presentations), len(products))
}
