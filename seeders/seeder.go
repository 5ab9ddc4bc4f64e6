package seeders

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"pastel-pos/config"
	"pastel-pos/models"
	"pastel-pos/utils"
)

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}
	return string(hash)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Seed is idempotent: rows are matched by email/name and only created when
// missing, so it runs on every boot.
func Seed() {
	users := []models.User{
		{
			Email:    "admin@pasteldapraca.com",
			Name:     "Administrador",
			Password: hashPassword(envOr("SEED_ADMIN_PASSWORD", "admin123")),
			Role:     "admin",
		},
		{
			Email:    "atendente@pasteldapraca.com",
			Name:     "Atendente",
			Password: hashPassword(envOr("SEED_ATTENDANT_PASSWORD", "atendente123")),
			Role:     "attendant",
		},
	}

	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Email: user.Email})
	}

	products := []models.Product{
		{Name: "Pastel de Carne", Description: utils.PtrString("Pastel frito recheado com carne moída"), Price: 8.50, StockQuantity: 50, Category: "Pastéis", Barcode: utils.PtrString("7890000000017")},
		{Name: "Pastel de Queijo", Description: utils.PtrString("Pastel frito recheado com mussarela"), Price: 8.00, StockQuantity: 50, Category: "Pastéis", Barcode: utils.PtrString("7890000000024")},
		{Name: "Pastel de Frango", Description: utils.PtrString("Pastel frito com frango desfiado e catupiry"), Price: 9.00, StockQuantity: 40, Category: "Pastéis", Barcode: utils.PtrString("7890000000031")},
		{Name: "Pastel de Pizza", Description: utils.PtrString("Presunto, mussarela, tomate e orégano"), Price: 9.00, StockQuantity: 40, Category: "Pastéis", Barcode: utils.PtrString("7890000000048")},
		{Name: "Caldo de Cana 300ml", Description: utils.PtrString("Caldo de cana gelado"), Price: 6.00, StockQuantity: 80, Category: "Bebidas", Barcode: utils.PtrString("7890000000055")},
		{Name: "Caldo de Cana 500ml", Description: utils.PtrString("Caldo de cana gelado"), Price: 9.00, StockQuantity: 60, Category: "Bebidas", Barcode: utils.PtrString("7890000000062")},
		{Name: "Refrigerante Lata", Description: utils.PtrString("Lata 350ml, sabores variados"), Price: 6.00, StockQuantity: 100, Category: "Bebidas", Barcode: utils.PtrString("7890000000079")},
		{Name: "Água Mineral", Description: utils.PtrString("Garrafa 500ml"), Price: 4.00, StockQuantity: 120, Category: "Bebidas", Barcode: utils.PtrString("7890000000086")},
		{Name: "Suco de Laranja", Description: utils.PtrString("Copo 400ml, feito na hora"), Price: 7.00, StockQuantity: 30, Category: "Bebidas", Barcode: utils.PtrString("7890000000093")},
	}

	for _, product := range products {
		config.DB.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	fmt.Printf("Seeding done: %d users, %d products\n", len(users), len(products))
}
