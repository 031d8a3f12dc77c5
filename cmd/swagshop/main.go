package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/swagshop/swagshop/internal/cli"
	"github.com/swagshop/swagshop/internal/config"
	"github.com/swagshop/swagshop/internal/database"
	"github.com/swagshop/swagshop/internal/fixtures"
	"github.com/swagshop/swagshop/internal/handlers"
	"github.com/swagshop/swagshop/internal/models"
	"github.com/swagshop/swagshop/internal/repository"
	"github.com/swagshop/swagshop/internal/services"
)

var version = "0.1.0"

// buildServerDependencies creates all dependencies needed for the server
func buildServerDependencies() (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	// Load server configuration
	deps.ServerConfig = config.LoadServerConfig()

	// Load fixture accounts for the login page
	users, err := fixtures.LoadUsers()
	if err != nil {
		return deps, fmt.Errorf("failed to load user fixtures: %w", err)
	}

	// Create service layer
	productRepo := repository.NewProductRepository()
	catalogService := services.NewCatalogService(productRepo)
	authService := services.NewAuthService(users)
	cartService := services.NewCartService()

	templates := deps.ServerConfig.TemplateDir

	// Create login and logout handlers
	loginHandler, err := handlers.NewLoginHandler(filepath.Join(templates, "login.html"), authService)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler
	deps.LogoutHandler = handlers.NewLogoutHandler(authService)

	// Create inventory handler
	inventoryHandler, err := handlers.NewInventoryHandler(filepath.Join(templates, "inventory.html"), catalogService, authService, cartService)
	if err != nil {
		return deps, fmt.Errorf("failed to create inventory handler: %w", err)
	}
	deps.InventoryHandler = inventoryHandler

	// Create cart handlers
	cartHandler, err := handlers.NewCartHandler(filepath.Join(templates, "cart.html"), catalogService, authService, cartService)
	if err != nil {
		return deps, fmt.Errorf("failed to create cart handler: %w", err)
	}
	deps.CartHandler = cartHandler
	deps.CartAddHandler = handlers.NewCartAddHandler(catalogService, authService, cartService)
	deps.CartRemoveHandler = handlers.NewCartRemoveHandler(catalogService, authService, cartService)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the storefront web server",
		Action: func(c *cli.Context) error {
			// Connect to database
			if err := database.Connect(); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()
			log.Println("Connected to database successfully")

			// Run database migrations
			if err := database.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			// Build all server dependencies
			deps, err := buildServerDependencies()
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// SeedCommand returns the seed command, which loads the fixture catalog.
// With --extra N it appends N randomly generated products on top, useful
// for eyeballing larger grids.
func SeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the fixture catalog into the database",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "extra",
				Usage: "number of random products to append",
			},
		},
		Action: func(c *cli.Context) error {
			if err := database.Connect(); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			if err := database.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			products, err := fixtures.LoadProducts()
			if err != nil {
				return fmt.Errorf("failed to load product fixtures: %w", err)
			}

			for i := 0; i < c.Int("extra"); i++ {
				product, err := models.NewProduct(
					fmt.Sprintf("%s %s", gofakeit.ProductName(), gofakeit.LetterN(4)),
					gofakeit.ProductDescription(),
					int64(gofakeit.Number(199, 9999)),
					"/static/images/backpack.svg",
				)
				if err != nil {
					return fmt.Errorf("failed to generate product: %w", err)
				}
				products = append(products, product)
			}

			catalog := services.NewCatalogService(repository.NewProductRepository())
			if err := catalog.Replace(products); err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}

			log.Printf("Seeded catalog with %d products", len(products))
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "swagshop",
		Usage:   "Swag Shop demo storefront management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			SeedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
