package sqlite

var Schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cats (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		breed         TEXT NOT NULL,
		description   TEXT NOT NULL,
		age           INTEGER NOT NULL CHECK (age >= 0),
		created_at    DATETIME NOT NULL,
		updated_at    DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cats_owner ON cats (owner_user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS feedings (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		cat_id     TEXT NOT NULL REFERENCES cats(id) ON DELETE CASCADE,
		feed_date  DATE NOT NULL,
		meal       TEXT NOT NULL DEFAULT 'B' CHECK (meal IN ('B','L','D')),
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedings_cat ON feedings (cat_id, feed_date DESC, seq)`,
	`CREATE TABLE IF NOT EXISTS toys (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cat_toys (
		cat_id TEXT NOT NULL REFERENCES cats(id) ON DELETE CASCADE,
		toy_id TEXT NOT NULL REFERENCES toys(id) ON DELETE CASCADE,
		PRIMARY KEY (cat_id, toy_id)
	)`,
}
