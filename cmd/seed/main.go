package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"markethub-be/internal/entity"
	"markethub-be/internal/repository/unitofwork"
	"markethub-be/pkg/catalog"
	"markethub-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the storefront catalog into PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Println("Info: No .env file found, using system env")
			}

			dsn := os.Getenv("DB_CONNECTION_STRING")
			if dsn == "" {
				return errors.New("DB_CONNECTION_STRING is not set")
			}

			seed, err := readSeed(file)
			if err != nil {
				return err
			}

			db, err := database.NewGormDBFromDSN(dsn, false)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			return run(cmd.Context(), db, seed)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to load instead of the embedded one")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal("Error: ", err)
	}
}

func readSeed(path string) (*catalog.Seed, error) {
	if path == "" {
		return catalog.DefaultSeed(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.LoadSeed(f)
}

// run inserts missing stores and products in a single transaction. Rows that
// already exist are left untouched so the command can be re-run.
func run(ctx context.Context, db *gorm.DB, seed *catalog.Seed) error {
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	created := 0
	for _, store := range seed.StoreEntities() {
		ok, err := insertMissing(ctx, store.Id, uow.StoreRepository().FindByID, func() error {
			return uow.StoreRepository().Create(ctx, &store)
		})
		if err != nil {
			uow.Rollback()
			return fmt.Errorf("seed store %d: %w", store.Id, err)
		}
		if ok {
			created++
		}
	}

	for _, product := range seed.ProductEntities() {
		ok, err := insertMissing(ctx, product.Id, uow.ProductRepository().FindByID, func() error {
			return uow.ProductRepository().Create(ctx, &product)
		})
		if err != nil {
			uow.Rollback()
			return fmt.Errorf("seed product %d: %w", product.Id, err)
		}
		if ok {
			created++
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	if err := database.ResetSequences(db); err != nil {
		return fmt.Errorf("reset sequences: %w", err)
	}

	log.Printf("Seed completed: %d rows created, %d already present", created, len(seed.Stores)+len(seed.Products)-created)
	return nil
}

func insertMissing[T any](ctx context.Context, id int, find func(context.Context, int) (T, error), create func() error) (bool, error) {
	_, err := find(ctx, id)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return false, err
	}
	return true, create()
}
