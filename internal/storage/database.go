// internal/storage/database.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ssantiago/sales-analytics/internal/config"
	"github.com/ssantiago/sales-analytics/internal/models"
)

// Store is the run-scoped handle to the SQLite analytics database. Each
// extraction replaces the entity tables wholesale; the visualization stage
// only reads.
type Store struct {
	db *gorm.DB
}

// indexStatements mirrors the query patterns of the visualization stage.
var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
	"CREATE INDEX IF NOT EXISTS idx_products_rating ON products(rating)",
	"CREATE INDEX IF NOT EXISTS idx_users_age ON users(age)",
	"CREATE INDEX IF NOT EXISTS idx_carts_user_id ON carts(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_cart_items_product_id ON cart_items(product_id)",
}

func Open(cfg config.StorageConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	var gormConfig *gorm.Config
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Replace drops and recreates every entity table, loads the given rows,
// rebuilds the secondary indexes and records the run metadata. All entities
// are created fresh each run; there is no incremental update path.
func (s *Store) Replace(products []models.Product, users []models.User, carts []models.Cart, items []models.CartItem, run models.ExtractionRun) error {
	migrator := s.db.Migrator()
	if err := migrator.DropTable(&models.Product{}, &models.User{}, &models.Cart{}, &models.CartItem{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := s.db.AutoMigrate(&models.Product{}, &models.User{}, &models.Cart{}, &models.CartItem{}, &models.ExtractionRun{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if len(products) > 0 {
		if err := s.db.CreateInBatches(products, 200).Error; err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
	}
	if len(users) > 0 {
		if err := s.db.CreateInBatches(users, 200).Error; err != nil {
			return fmt.Errorf("failed to insert users: %w", err)
		}
	}
	if len(carts) > 0 {
		if err := s.db.CreateInBatches(carts, 200).Error; err != nil {
			return fmt.Errorf("failed to insert carts: %w", err)
		}
	}
	if len(items) > 0 {
		if err := s.db.CreateInBatches(items, 200).Error; err != nil {
			return fmt.Errorf("failed to insert cart items: %w", err)
		}
	}

	for _, stmt := range indexStatements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := s.db.Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record extraction run: %w", err)
	}

	return nil
}

func (s *Store) LoadProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (s *Store) LoadUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (s *Store) LoadCarts() ([]models.Cart, error) {
	var carts []models.Cart
	if err := s.db.Order("id").Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to load carts: %w", err)
	}
	return carts, nil
}

func (s *Store) LoadCartItems() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Order("cart_id, product_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	return items, nil
}

// LatestRun returns the metadata row of the most recent extraction.
func (s *Store) LatestRun() (*models.ExtractionRun, error) {
	var run models.ExtractionRun
	if err := s.db.Order("started_at DESC").First(&run).Error; err != nil {
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}
	return &run, nil
}
