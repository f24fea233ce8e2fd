// Package storage persists harvested records to SQLite as an alternative to
// the JSON files the collector writes.
package storage

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mvp-joe/docharvest/internal/extract"
)

const createDocstringsTable = `
CREATE TABLE IF NOT EXISTS docstrings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file TEXT,
	name TEXT NOT NULL,
	parent TEXT,
	type TEXT NOT NULL,
	docstring TEXT NOT NULL
)`

const createSymbolsTable = `
CREATE TABLE IF NOT EXISTS symbols (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	parent TEXT,
	type TEXT NOT NULL
)`

// Store writes harvested records to a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database at dbPath and ensures
// the schema exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, ddl := range []string{createDocstringsTable, createSymbolsTable} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDocstrings replaces the docstrings table contents with docs, in one
// transaction.
func (s *Store) SaveDocstrings(docs []extract.Docstring) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	if _, err := sq.Delete("docstrings").RunWith(tx).Exec(); err != nil {
		return fmt.Errorf("failed to clear docstrings: %w", err)
	}

	for _, d := range docs {
		_, err := sq.Insert("docstrings").
			Columns("file", "name", "parent", "type", "docstring").
			Values(d.File, d.Name, d.Parent, d.Type, d.Docstring).
			RunWith(tx).
			Exec()
		if err != nil {
			return fmt.Errorf("failed to insert docstring %q: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit docstrings: %w", err)
	}
	return nil
}

// SaveSymbols replaces the symbols table contents with symbols, in one
// transaction.
func (s *Store) SaveSymbols(symbols []extract.Symbol) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := sq.Delete("symbols").RunWith(tx).Exec(); err != nil {
		return fmt.Errorf("failed to clear symbols: %w", err)
	}

	for _, sym := range symbols {
		_, err := sq.Insert("symbols").
			Columns("name", "parent", "type").
			Values(sym.Name, sym.Parent, sym.Type).
			RunWith(tx).
			Exec()
		if err != nil {
			return fmt.Errorf("failed to insert symbol %q: %w", sym.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit symbols: %w", err)
	}
	return nil
}

// ReadDocstrings loads all stored docstrings in insertion order.
func (s *Store) ReadDocstrings() ([]extract.Docstring, error) {
	rows, err := sq.Select("file", "name", "parent", "type", "docstring").
		From("docstrings").
		OrderBy("id").
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query docstrings: %w", err)
	}
	defer rows.Close()

	var docs []extract.Docstring
	for rows.Next() {
		var d extract.Docstring
		if err := rows.Scan(&d.File, &d.Name, &d.Parent, &d.Type, &d.Docstring); err != nil {
			return nil, fmt.Errorf("failed to scan docstring: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// ReadSymbols loads all stored symbols in insertion order.
func (s *Store) ReadSymbols() ([]extract.Symbol, error) {
	rows, err := sq.Select("name", "parent", "type").
		From("symbols").
		OrderBy("id").
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []extract.Symbol
	for rows.Next() {
		var sym extract.Symbol
		if err := rows.Scan(&sym.Name, &sym.Parent, &sym.Type); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}
