package postgres

// Schema en orden de dependencias (FKs).
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		username      VARCHAR(150) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cats (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		name          VARCHAR(100) NOT NULL,
		breed         VARCHAR(100) NOT NULL,
		description   VARCHAR(250) NOT NULL,
		age           INTEGER NOT NULL CHECK (age >= 0),
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cats_owner ON cats (owner_user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS feedings (
		id         TEXT PRIMARY KEY,
		seq        BIGINT GENERATED ALWAYS AS IDENTITY,
		cat_id     TEXT NOT NULL REFERENCES cats(id) ON DELETE CASCADE,
		feed_date  DATE NOT NULL,
		meal       CHAR(1) NOT NULL DEFAULT 'B' CHECK (meal IN ('B','L','D')),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedings_cat ON feedings (cat_id, feed_date DESC, seq)`,
	`CREATE TABLE IF NOT EXISTS toys (
		id         TEXT PRIMARY KEY,
		name       VARCHAR(50) NOT NULL,
		color      VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cat_toys (
		cat_id TEXT NOT NULL REFERENCES cats(id) ON DELETE CASCADE,
		toy_id TEXT NOT NULL REFERENCES toys(id) ON DELETE CASCADE,
		PRIMARY KEY (cat_id, toy_id)
	)`,
}
