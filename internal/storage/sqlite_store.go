package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// Pref keys. Values are plain text.
const (
	PrefShareCount   = "share_count"
	PrefSeenTutorial = "seen_tutorial"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createDeals = `
CREATE TABLE IF NOT EXISTS deals (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  arv REAL NOT NULL,
  purchase_price REAL NOT NULL,
  repair_costs REAL NOT NULL,
  location_score INTEGER NOT NULL,
  market_trend INTEGER NOT NULL,
  rental_demand INTEGER NOT NULL,
  days_on_market INTEGER NOT NULL,
  comparable_sales INTEGER NOT NULL,
  score INTEGER NOT NULL,
  result_json TEXT NOT NULL DEFAULT '{}'
);
`
	if _, err := s.db.Exec(createDeals); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_deals_score ON deals(score);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_deals_created_at ON deals(created_at);`); err != nil {
		return err
	}

	const createPrefs = `
CREATE TABLE IF NOT EXISTS prefs (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.Exec(createPrefs); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) CountDeals() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM deals`).Scan(&n)
	return n, err
}

// UpsertMany inserts a seed dataset without duplicating by id.
func (s *SQLiteStore) UpsertMany(items []domain.SavedDeal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO deals
(id, created_at, arv, purchase_price, repair_costs, location_score, market_trend, rental_demand, days_on_market, comparable_sales, score, result_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range items {
		res, _ := json.Marshal(d.Result)
		if _, err := stmt.Exec(
			d.ID, d.CreatedAt.UTC().Format(time.RFC3339), d.Input.AfterRepairValue,
			d.Input.PurchasePrice, d.Input.RepairCosts, d.Input.LocationScore,
			d.Input.MarketTrend, d.Input.RentalDemand, d.Input.DaysOnMarket,
			d.Input.ComparableSales, d.Result.Breakdown.TotalScore, string(res),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) CreateDeal(d domain.SavedDeal) (domain.SavedDeal, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	res, _ := json.Marshal(d.Result)

	_, err := s.db.Exec(`
INSERT INTO deals
(id, created_at, arv, purchase_price, repair_costs, location_score, market_trend, rental_demand, days_on_market, comparable_sales, score, result_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		d.ID, d.CreatedAt.UTC().Format(time.RFC3339), d.Input.AfterRepairValue,
		d.Input.PurchasePrice, d.Input.RepairCosts, d.Input.LocationScore,
		d.Input.MarketTrend, d.Input.RentalDemand, d.Input.DaysOnMarket,
		d.Input.ComparableSales, d.Result.Breakdown.TotalScore, string(res),
	)
	return d, err
}

func (s *SQLiteStore) DeleteDeal(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM deals WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) GetDeal(id string) (domain.SavedDeal, bool, error) {
	row := s.db.QueryRow(`
SELECT id, created_at, arv, purchase_price, repair_costs, location_score, market_trend, rental_demand, days_on_market, comparable_sales, result_json
FROM deals WHERE id = ?
`, id)
	d, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return domain.SavedDeal{}, false, nil
	}
	if err != nil {
		return domain.SavedDeal{}, false, err
	}
	return d, true, nil
}

func (s *SQLiteStore) ListDeals(limit, offset int) ([]domain.SavedDeal, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.CountDeals()
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(`
SELECT id, created_at, arv, purchase_price, repair_costs, location_score, market_trend, rental_demand, days_on_market, comparable_sales, result_json
FROM deals
ORDER BY created_at DESC, id
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.SavedDeal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(r rowScanner) (domain.SavedDeal, error) {
	var d domain.SavedDeal
	var createdAt, resJSON string

	err := r.Scan(
		&d.ID, &createdAt, &d.Input.AfterRepairValue, &d.Input.PurchasePrice,
		&d.Input.RepairCosts, &d.Input.LocationScore, &d.Input.MarketTrend,
		&d.Input.RentalDemand, &d.Input.DaysOnMarket, &d.Input.ComparableSales,
		&resJSON,
	)
	if err != nil {
		return domain.SavedDeal{}, err
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	_ = json.Unmarshal([]byte(resJSON), &d.Result)
	return d, nil
}

// ---- Prefs (plain-text key/value) ----

func (s *SQLiteStore) GetPref(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLiteStore) SetPref(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO prefs (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, key, value)
	return err
}

// IncrementShareCount bumps the running shares tally and returns the new
// value.
func (s *SQLiteStore) IncrementShareCount() (int, error) {
	if _, err := s.db.Exec(`
INSERT INTO prefs (key, value) VALUES (?, '1')
ON CONFLICT(key) DO UPDATE SET value = CAST(CAST(value AS INTEGER) + 1 AS TEXT)
`, PrefShareCount); err != nil {
		return 0, err
	}
	return s.ShareCount()
}

func (s *SQLiteStore) ShareCount() (int, error) {
	v, ok, err := s.GetPref(PrefShareCount)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", PrefShareCount, err)
	}
	return n, nil
}

func (s *SQLiteStore) SeenTutorial() (bool, error) {
	v, ok, err := s.GetPref(PrefSeenTutorial)
	if err != nil || !ok {
		return false, err
	}
	return v == "true", nil
}

func (s *SQLiteStore) SetSeenTutorial() error {
	return s.SetPref(PrefSeenTutorial, "true")
}
