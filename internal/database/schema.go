package database

import (
	"context"
	"database/sql"
)

// schema holds the DDL for every table the service owns.  Statements
// are idempotent so EnsureSchema can run on every boot.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(120)  NOT NULL,
		email         VARCHAR(255)  NOT NULL,
		phone         VARCHAR(32)   NULL,
		password_hash VARCHAR(255)  NOT NULL,
		role          ENUM('USER','ADMIN','MANAGER') NOT NULL DEFAULT 'USER',
		created_by    BIGINT UNSIGNED NULL,
		is_active     TINYINT(1)    NOT NULL DEFAULT 1,
		created_at    TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email),
		CONSTRAINT fk_users_created_by FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64)   NOT NULL,
		expires_at DATETIME   NOT NULL,
		revoked_at DATETIME   NULL,
		created_at TIMESTAMP  NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_refresh_hash (token_hash),
		KEY idx_refresh_user (user_id),
		CONSTRAINT fk_refresh_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS turfs (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		admin_id     BIGINT UNSIGNED NOT NULL,
		name         VARCHAR(160) NOT NULL,
		city         VARCHAR(80)  NOT NULL,
		address      VARCHAR(255) NOT NULL,
		description  TEXT         NULL,
		base_price   BIGINT       NOT NULL,
		is_available TINYINT(1)   NOT NULL DEFAULT 1,
		created_at   TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_turfs_city (city),
		KEY idx_turfs_admin (admin_id),
		CONSTRAINT fk_turfs_admin FOREIGN KEY (admin_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS turf_slots (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		turf_id    BIGINT UNSIGNED NOT NULL,
		slot_id    TINYINT UNSIGNED NOT NULL,
		price      BIGINT     NOT NULL,
		enabled    TINYINT(1) NOT NULL DEFAULT 1,
		updated_at TIMESTAMP  NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_turf_slot (turf_id, slot_id),
		CONSTRAINT fk_slots_turf FOREIGN KEY (turf_id) REFERENCES turfs(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id             BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		reference      CHAR(10)   NOT NULL,
		turf_id        BIGINT UNSIGNED NOT NULL,
		user_id        BIGINT UNSIGNED NULL,
		customer_name  VARCHAR(120) NULL,
		customer_phone VARCHAR(32)  NULL,
		booking_date   DATE       NOT NULL,
		status         ENUM('CONFIRMED','PENDING','CANCELLED','COMPLETED') NOT NULL DEFAULT 'CONFIRMED',
		amount         BIGINT     NOT NULL,
		created_at     TIMESTAMP  NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMP  NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_booking_reference (reference),
		KEY idx_bookings_turf_date (turf_id, booking_date),
		KEY idx_bookings_user (user_id),
		CONSTRAINT fk_bookings_turf FOREIGN KEY (turf_id) REFERENCES turfs(id),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS booking_slots (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		booking_id BIGINT UNSIGNED NOT NULL,
		slot_id    TINYINT UNSIGNED NOT NULL,
		price      BIGINT NOT NULL,
		KEY idx_booking_slots_booking (booking_id),
		CONSTRAINT fk_booking_slots_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS turf_images (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		turf_id    BIGINT UNSIGNED NOT NULL,
		url        VARCHAR(512) NOT NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_images_turf (turf_id),
		CONSTRAINT fk_images_turf FOREIGN KEY (turf_id) REFERENCES turfs(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.  It is safe to call on
// every startup; existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
