/*
Package sqlite persists snapshots of the content store to a SQLite file, so that contents survive restarts.
The store remains the only source of truth while running: the database is read once at startup and rewritten
wholesale on each flush.
*/
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/silktrader/statuary/pkg/content"
	"github.com/sirupsen/logrus"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

type Storage struct {
	connection *sql.DB
	logger     logrus.FieldLogger
}

// New opens the database at path, creating it along with its schema when missing. Existing databases must match
// the current schema.
func New(logger logrus.FieldLogger, path string) (*Storage, error) {
	logger.WithField("path", path).Info("initialising SQLite DB")

	var connection *sql.DB
	var err error

	// the database already exists, check for its contents
	if _, statErr := os.Stat(path); statErr == nil {
		if connection, err = getValidConnection(path); err != nil {
			logger.WithError(err).Error("error while verifying existing database")
			return nil, err
		}
	} else {
		if connection, err = sql.Open("sqlite3", getConnectionString(path)); err != nil {
			logger.WithError(err).Error("error while creating new database")
			return nil, err
		}
		connection.SetMaxOpenConns(1)
		if _, err = connection.Exec(schema); err != nil {
			logger.WithError(err).Error("error while building database schema")
			_ = connection.Close()
			return nil, err
		}
	}

	// opening the DB will fail silently when the package is compiled without CGO_ENABLED
	if err = connection.Ping(); err != nil {
		_ = connection.Close()
		return nil, err
	}
	return &Storage{connection: connection, logger: logger}, nil
}

func getValidConnection(path string) (*sql.DB, error) {
	connection, err := sql.Open("sqlite3", getConnectionString(path))
	if err != nil {
		return nil, err
	}
	connection.SetMaxOpenConns(1)

	// read the schema as defined in the storage package
	desired, err := sql.Open("sqlite3", getConnectionString(":memory:"))
	if err != nil {
		_ = connection.Close()
		return nil, err
	}
	defer desired.Close()
	desired.SetMaxOpenConns(1)
	if _, err = desired.Exec(schema); err != nil {
		_ = connection.Close()
		return nil, err
	}

	// compare the defined schema with the actual one found in the existing database
	desiredTables, err := mapSchema(desired)
	if err != nil {
		_ = connection.Close()
		return nil, err
	}
	actualTables, err := mapSchema(connection)
	if err != nil {
		_ = connection.Close()
		return nil, err
	}

	if sameSchemaMap(desiredTables, actualTables) {
		return connection, nil
	}
	_ = connection.Close()
	return nil, ErrSchemaMismatch
}

func mapSchema(connection *sql.DB) (map[string]string, error) {
	rows, err := connection.Query(`SELECT name, sql FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// in memory and on file schemas may differ in their line endings
	var replacer = strings.NewReplacer(
		"\n\t\t", "",
		"\r\n\t\t", "",
		"\r\n", "",
		"\n", "",
	)

	var tables = make(map[string]string)
	var name, sqlCode string
	for rows.Next() {
		if err = rows.Scan(&name, &sqlCode); err != nil {
			return tables, err
		}
		tables[name] = replacer.Replace(sqlCode)
	}
	return tables, rows.Err()
}

func sameSchemaMap(first, second map[string]string) bool {
	// the second map might be larger than the first, hence the additional length check
	if len(first) != len(second) {
		return false
	}
	for firstKey, firstValue := range first {
		if secondValue, found := second[firstKey]; !found || secondValue != firstValue {
			return false
		}
	}
	return true
}

func getConnectionString(path string) string {
	return "file:" + path + "?_fk=on"
}

// Load reads every collection back, in insertion order.
func (s *Storage) Load() (snapshot content.Snapshot, err error) {
	if snapshot.Users, err = loadTable[content.User](s.connection, usersTable); err != nil {
		return snapshot, err
	}
	if snapshot.Statues, err = loadTable[content.Statue](s.connection, statuesTable); err != nil {
		return snapshot, err
	}
	if snapshot.Annotations, err = loadTable[content.Annotation](s.connection, annotationsTable); err != nil {
		return snapshot, err
	}
	if snapshot.Comments, err = loadTable[content.Comment](s.connection, commentsTable); err != nil {
		return snapshot, err
	}
	if snapshot.Tours, err = loadTable[content.PremiumTour](s.connection, toursTable); err != nil {
		return snapshot, err
	}
	if snapshot.Sponsors, err = loadTable[content.SponsorExhibit](s.connection, sponsorsTable); err != nil {
		return snapshot, err
	}
	if snapshot.Purchases, err = loadTable[content.Purchase](s.connection, purchasesTable); err != nil {
		return snapshot, err
	}

	s.logger.WithFields(logrus.Fields{
		"users":   len(snapshot.Users),
		"statues": len(snapshot.Statues),
	}).Debug("snapshot loaded")
	return snapshot, nil
}

// Save replaces the stored contents with the snapshot's, atomically.
func (s *Storage) Save(snapshot content.Snapshot) error {
	tx, err := s.connection.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	// a no-op once committed
	defer func() { _ = tx.Rollback() }()

	if err = saveTable(tx, usersTable, snapshot.Users, func(u content.User) string { return u.UserId }); err != nil {
		return err
	}
	if err = saveTable(tx, statuesTable, snapshot.Statues, func(st content.Statue) string { return st.StatueId }); err != nil {
		return err
	}
	if err = saveTable(tx, annotationsTable, snapshot.Annotations, func(a content.Annotation) string { return a.AnnotationId }); err != nil {
		return err
	}
	if err = saveTable(tx, commentsTable, snapshot.Comments, func(c content.Comment) string { return c.CommentId }); err != nil {
		return err
	}
	if err = saveTable(tx, toursTable, snapshot.Tours, func(t content.PremiumTour) string { return t.TourId }); err != nil {
		return err
	}
	if err = saveTable(tx, sponsorsTable, snapshot.Sponsors, func(sp content.SponsorExhibit) string { return sp.SponsorId }); err != nil {
		return err
	}
	if err = saveTable(tx, purchasesTable, snapshot.Purchases, func(p content.Purchase) string { return p.PurchaseId }); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	s.logger.Debug("snapshot saved")
	return nil
}

func (s *Storage) Close() error {
	s.logger.Debug("database stopping")
	return s.connection.Close()
}

func loadTable[T any](connection *sql.DB, table string) ([]T, error) {
	rows, err := connection.Query(fmt.Sprintf(`SELECT body FROM %s ORDER BY position`, table))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	defer rows.Close()

	var records []T
	var body string
	for rows.Next() {
		if err = rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		var record T
		if err = json.Unmarshal([]byte(body), &record); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", table, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func saveTable[T any](tx *sql.Tx, table string, records []T, id func(T) string) error {
	if _, err := tx.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	statement, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %s (id, position, body) VALUES (?, ?, ?)`, table))
	if err != nil {
		return fmt.Errorf("preparing %s insert: %w", table, err)
	}
	defer statement.Close()

	for position, record := range records {
		body, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encoding %s record: %w", table, err)
		}
		if _, err = statement.Exec(id(record), position, string(body)); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}
