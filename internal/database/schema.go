package database

// SetupCatalogSchema creates every catalog, customer, cart and order table.
// The database owns the rules the validator does not: slug and SKU code
// uniqueness, foreign keys between catalog entities, and the status enums.
func (db *DB) SetupCatalogSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artists (
		    id CHAR(36) PRIMARY KEY,
		    slug VARCHAR(255) NOT NULL,
		    name VARCHAR(255) NOT NULL,
		    bio TEXT,
		    website_url VARCHAR(512),
		    instagram VARCHAR(512),
		    twitter VARCHAR(512),
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    UNIQUE KEY uk_artist_slug (slug)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS categories (
		    id CHAR(36) PRIMARY KEY,
		    slug VARCHAR(255) NOT NULL,
		    name VARCHAR(255) NOT NULL,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    UNIQUE KEY uk_category_slug (slug)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS collections (
		    id CHAR(36) PRIMARY KEY,
		    slug VARCHAR(255) NOT NULL,
		    name VARCHAR(255) NOT NULL,
		    description TEXT,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    UNIQUE KEY uk_collection_slug (slug)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS artworks (
		    id CHAR(36) PRIMARY KEY,
		    artist_id CHAR(36) NOT NULL,
		    title VARCHAR(500) NOT NULL,
		    description TEXT,
		    year INT NULL,
		    materials JSON NOT NULL,
		    dimensions JSON NULL,
		    tags JSON NOT NULL,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    FOREIGN KEY (artist_id) REFERENCES artists(id),
		    INDEX idx_artwork_artist (artist_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS artwork_categories (
		    artwork_id CHAR(36) NOT NULL,
		    category_id CHAR(36) NOT NULL,
		    PRIMARY KEY (artwork_id, category_id),
		    FOREIGN KEY (artwork_id) REFERENCES artworks(id),
		    FOREIGN KEY (category_id) REFERENCES categories(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS artwork_collections (
		    artwork_id CHAR(36) NOT NULL,
		    collection_id CHAR(36) NOT NULL,
		    PRIMARY KEY (artwork_id, collection_id),
		    FOREIGN KEY (artwork_id) REFERENCES artworks(id),
		    FOREIGN KEY (collection_id) REFERENCES collections(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS media_assets (
		    id CHAR(36) PRIMARY KEY,
		    artwork_id CHAR(36) NOT NULL,
		    position INT NOT NULL,
		    kind ENUM('image', 'video') NOT NULL,
		    public_id VARCHAR(255) NOT NULL,
		    alt VARCHAR(512),
		    width INT NULL,
		    height INT NULL,
		    FOREIGN KEY (artwork_id) REFERENCES artworks(id),
		    INDEX idx_media_artwork (artwork_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS skus (
		    id CHAR(36) PRIMARY KEY,
		    artwork_id CHAR(36) NOT NULL,
		    sku VARCHAR(100) NOT NULL,
		    is_original BOOLEAN NOT NULL DEFAULT FALSE,
		    is_digital BOOLEAN NOT NULL DEFAULT FALSE,
		    edition_size INT NULL,
		    stock_quantity INT NULL,
		    price_currency CHAR(3) NOT NULL,
		    price_amount BIGINT NOT NULL,
		    compare_at_currency CHAR(3) NULL,
		    compare_at_amount BIGINT NULL,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    FOREIGN KEY (artwork_id) REFERENCES artworks(id),
		    UNIQUE KEY uk_sku_code (sku),
		    INDEX idx_sku_artwork (artwork_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS customers (
		    id CHAR(36) PRIMARY KEY,
		    email VARCHAR(255) NOT NULL,
		    full_name VARCHAR(255),
		    default_address_id CHAR(36) NULL,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    UNIQUE KEY uk_customer_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS carts (
		    id CHAR(36) PRIMARY KEY,
		    customer_id CHAR(36) NULL,
		    session_id VARCHAR(255) NULL,
		    currency CHAR(3) NOT NULL,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    INDEX idx_cart_customer (customer_id),
		    INDEX idx_cart_session (session_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS cart_items (
		    cart_id CHAR(36) NOT NULL,
		    position INT NOT NULL,
		    sku_id CHAR(36) NOT NULL,
		    quantity INT NOT NULL,
		    PRIMARY KEY (cart_id, position),
		    FOREIGN KEY (cart_id) REFERENCES carts(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id CHAR(36) PRIMARY KEY,
		    customer_id CHAR(36) NULL,
		    email VARCHAR(255) NOT NULL,
		    currency CHAR(3) NOT NULL,
		    shipping_address JSON NULL,
		    billing_address JSON NULL,
		    subtotal JSON NOT NULL,
		    tax JSON NULL,
		    shipping JSON NULL,
		    discount JSON NULL,
		    total JSON NOT NULL,
		    payment_status ENUM('requires_payment', 'paid', 'refunded', 'failed', 'canceled') NOT NULL,
		    fulfillment_status ENUM('unfulfilled', 'processing', 'shipped', 'delivered', 'digital_delivered', 'returned', 'canceled') NOT NULL,
		    stripe_payment_intent_id VARCHAR(255) NULL,
		    created_at TIMESTAMP NOT NULL,
		    updated_at TIMESTAMP NOT NULL,
		    INDEX idx_order_customer (customer_id),
		    INDEX idx_order_payment_status (payment_status),
		    INDEX idx_order_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS order_items (
		    order_id CHAR(36) NOT NULL,
		    position INT NOT NULL,
		    sku_id CHAR(36) NOT NULL,
		    title VARCHAR(500) NOT NULL,
		    artist_name VARCHAR(255),
		    quantity INT NOT NULL,
		    unit_price JSON NOT NULL,
		    subtotal JSON NOT NULL,
		    tax JSON NULL,
		    total JSON NOT NULL,
		    PRIMARY KEY (order_id, position),
		    FOREIGN KEY (order_id) REFERENCES orders(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CleanupCatalogData removes all rows (but keeps schema)
func (db *DB) CleanupCatalogData() error {
	queries := []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM cart_items",
		"DELETE FROM carts",
		"DELETE FROM customers",
		"DELETE FROM skus",
		"DELETE FROM media_assets",
		"DELETE FROM artwork_categories",
		"DELETE FROM artwork_collections",
		"DELETE FROM artworks",
		"DELETE FROM collections",
		"DELETE FROM categories",
		"DELETE FROM artists",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropCatalogSchema removes all catalog tables
func (db *DB) DropCatalogSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS cart_items",
		"DROP TABLE IF EXISTS carts",
		"DROP TABLE IF EXISTS customers",
		"DROP TABLE IF EXISTS skus",
		"DROP TABLE IF EXISTS media_assets",
		"DROP TABLE IF EXISTS artwork_categories",
		"DROP TABLE IF EXISTS artwork_collections",
		"DROP TABLE IF EXISTS artworks",
		"DROP TABLE IF EXISTS collections",
		"DROP TABLE IF EXISTS categories",
		"DROP TABLE IF EXISTS artists",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
