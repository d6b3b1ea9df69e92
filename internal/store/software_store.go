package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

const softwareColumns = "id, name, current_version, vendor, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSoftware(row rowScanner) (*models.SoftwareItem, error) {
	var item models.SoftwareItem
	if err := row.Scan(&item.ID, &item.Name, &item.CurrentVersion, &item.Vendor, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// ListSoftware returns the whole inventory ordered by name, then id.
func (s *Store) ListSoftware() ([]*models.SoftwareItem, error) {
	rows, err := s.db.Query("SELECT " + softwareColumns + " FROM software_inventory ORDER BY name COLLATE NOCASE, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list software: %w", err)
	}
	defer rows.Close()

	items := []*models.SoftwareItem{}
	for rows.Next() {
		item, err := scanSoftware(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetSoftware returns a single inventory item.
func (s *Store) GetSoftware(id int64) (*models.SoftwareItem, error) {
	item, err := scanSoftware(s.db.QueryRow("SELECT "+softwareColumns+" FROM software_inventory WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

// CountSoftware returns the number of inventory items.
func (s *Store) CountSoftware() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM software_inventory").Scan(&count)
	return count, err
}

// AddSoftware inserts an item and returns it with its new id.
func (s *Store) AddSoftware(name, currentVersion, vendor string) (*models.SoftwareItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("software name is required")
	}
	now := time.Now().UTC()
	res, err := s.db.Exec(
		"INSERT INTO software_inventory (name, current_version, vendor, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		name, strings.TrimSpace(currentVersion), strings.TrimSpace(vendor), now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to add software: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetSoftware(id)
}

// DeleteSoftware removes an item by id.
func (s *Store) DeleteSoftware(id int64) error {
	res, err := s.db.Exec("DELETE FROM software_inventory WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete software: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceInventory swaps the whole inventory for items in one transaction.
// Items with a blank name are skipped and duplicates are stored once.
// It returns the number of stored items.
func (s *Store) ReplaceInventory(items []models.SoftwareItem) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Rollback is a no-op if the transaction is committed.

	if _, err := tx.Exec("DELETE FROM software_inventory"); err != nil {
		return 0, fmt.Errorf("failed to clear inventory: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO software_inventory (name, current_version, vendor, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?) ON CONFLICT (name, current_version) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	stored := 0
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		res, err := stmt.Exec(name, strings.TrimSpace(item.CurrentVersion), strings.TrimSpace(item.Vendor), now, now)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			stored++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return stored, nil
}

// InventoryItems returns the inventory as plain values, ready for a batch.
func (s *Store) InventoryItems() ([]models.SoftwareItem, error) {
	list, err := s.ListSoftware()
	if err != nil {
		return nil, err
	}
	items := make([]models.SoftwareItem, len(list))
	for i, item := range list {
		items[i] = *item
	}
	return items, nil
}
