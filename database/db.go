package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"rushed/config"
	"rushed/models"
)

// Store persists saved preferences, the only state allowed to outlive a
// session. The allowlist is exactly the columns of the preferences table;
// criteria, results and selections are never written here.
type Store struct {
	db *sql.DB
}

// ─── Init ─────────────────────────────────────────────────────────────────────

func Open(cfg *config.Config) (*Store, error) {
	db, err := sql.Open("postgres", buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// The database may take a moment to come up
	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after retries: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrated")
	return s, nil
}

func buildDSN(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			client_id               TEXT PRIMARY KEY,
			home_airport_json       TEXT,
			preferred_airlines_json TEXT,
			preferred_cabin_class   TEXT,
			direct_only             BOOLEAN DEFAULT FALSE,
			recent_searches_json    TEXT,
			updated_at              TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

// ─── Preferences ──────────────────────────────────────────────────────────────

// GetPreferences loads a client's saved preferences. A client with no row
// gets the zero value, not an error.
func (s *Store) GetPreferences(clientID string) (models.SavedPreferences, error) {
	var (
		prefs       models.SavedPreferences
		homeAirport sql.NullString
		airlines    sql.NullString
		cabin       sql.NullString
		directOnly  sql.NullBool
		recent      sql.NullString
	)

	err := s.db.QueryRow(`
		SELECT home_airport_json, preferred_airlines_json, preferred_cabin_class,
		       direct_only, recent_searches_json
		FROM preferences WHERE client_id = $1`, clientID).
		Scan(&homeAirport, &airlines, &cabin, &directOnly, &recent)
	if errors.Is(err, sql.ErrNoRows) {
		return prefs, nil
	}
	if err != nil {
		return prefs, err
	}

	if homeAirport.Valid && homeAirport.String != "" {
		var a models.Airport
		if err := json.Unmarshal([]byte(homeAirport.String), &a); err == nil {
			prefs.HomeAirport = &a
		}
	}
	if airlines.Valid && airlines.String != "" {
		_ = json.Unmarshal([]byte(airlines.String), &prefs.PreferredAirlines)
	}
	if cabin.Valid {
		prefs.PreferredCabin = models.CabinClass(cabin.String)
	}
	prefs.DirectOnly = directOnly.Valid && directOnly.Bool
	if recent.Valid && recent.String != "" {
		_ = json.Unmarshal([]byte(recent.String), &prefs.RecentSearches)
	}

	return prefs, nil
}

// SavePreferences upserts a client's saved preferences.
func (s *Store) SavePreferences(clientID string, prefs models.SavedPreferences) error {
	homeAirport := ""
	if prefs.HomeAirport != nil {
		b, _ := json.Marshal(prefs.HomeAirport)
		homeAirport = string(b)
	}
	airlines := ""
	if len(prefs.PreferredAirlines) > 0 {
		b, _ := json.Marshal(prefs.PreferredAirlines)
		airlines = string(b)
	}
	recent := ""
	if len(prefs.RecentSearches) > 0 {
		b, _ := json.Marshal(prefs.RecentSearches)
		recent = string(b)
	}

	_, err := s.db.Exec(`
		INSERT INTO preferences (client_id, home_airport_json, preferred_airlines_json,
			preferred_cabin_class, direct_only, recent_searches_json, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (client_id) DO UPDATE SET
			home_airport_json = EXCLUDED.home_airport_json,
			preferred_airlines_json = EXCLUDED.preferred_airlines_json,
			preferred_cabin_class = EXCLUDED.preferred_cabin_class,
			direct_only = EXCLUDED.direct_only,
			recent_searches_json = EXCLUDED.recent_searches_json,
			updated_at = NOW()`,
		clientID, homeAirport, airlines, string(prefs.PreferredCabin), prefs.DirectOnly, recent)
	return err
}

// RecordSearch front-inserts the criteria into the client's recent-search
// history, keeping at most five entries.
func (s *Store) RecordSearch(clientID string, criteria models.TripCriteria) error {
	prefs, err := s.GetPreferences(clientID)
	if err != nil {
		return err
	}
	prefs.AddRecentSearch(criteria)
	return s.SavePreferences(clientID, prefs)
}
