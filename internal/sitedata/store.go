package sitedata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hailey21/notion-blog/internal/db"
	"github.com/hailey21/notion-blog/internal/notion"
)

// Store persists a site map snapshot in SQLite and serves it as a Provider.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// ImportFunc is called after each page record is written.
type ImportFunc func(done, total int, pageID string)

// Import replaces the stored snapshot with sm in a single transaction.
// Canonical path order is preserved.
func (s *Store) Import(ctx context.Context, sm *notion.SiteMap, onPage ImportFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM blocks",
		"DELETE FROM pages",
		"DELETE FROM canonical_pages",
		"DELETE FROM site",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing snapshot: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO site (id, name, domain, root_page_id) VALUES (1, ?, ?, ?)`,
		sm.Site.Name, sm.Site.Domain, sm.Site.RootNotionPageID,
	)
	if err != nil {
		return fmt.Errorf("inserting site: %w", err)
	}

	for i, p := range sm.Paths() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO canonical_pages (path, page_id, position) VALUES (?, ?, ?)`,
			p.Path, p.PageID, i,
		)
		if err != nil {
			return fmt.Errorf("inserting canonical path %q: %w", p.Path, err)
		}
	}

	total := 0
	for _, rm := range sm.PageMap {
		if rm != nil {
			total++
		}
	}
	done := 0
	for pageID, rm := range sm.PageMap {
		if rm == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO pages (page_id) VALUES (?)`, pageID); err != nil {
			return fmt.Errorf("inserting page %s: %w", pageID, err)
		}
		for _, b := range rm.Blocks() {
			if err := insertBlock(ctx, tx, pageID, b); err != nil {
				return err
			}
		}
		done++
		if onPage != nil {
			onPage(done, total, pageID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func insertBlock(ctx context.Context, tx *sql.Tx, pageID string, b *notion.Block) error {
	content, err := json.Marshal(b.Content)
	if err != nil {
		return fmt.Errorf("marshalling content of block %s: %w", b.ID, err)
	}
	if b.Content == nil {
		content = []byte("[]")
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO blocks (
			page_id, id, type, parent_id, parent_table, title, text,
			content, created_time, last_edited_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pageID, b.ID, b.Type, b.ParentID, b.ParentTable, b.Properties.Title, b.Text,
		string(content), b.CreatedTime, b.LastEditedTime,
	)
	if err != nil {
		return fmt.Errorf("inserting block %s: %w", b.ID, err)
	}
	return nil
}

// GetSiteMap reassembles the stored snapshot. An empty database yields an
// empty site map.
func (s *Store) GetSiteMap(ctx context.Context) (*notion.SiteMap, error) {
	sm := notion.NewSiteMap()

	err := s.db.QueryRowContext(ctx,
		`SELECT name, domain, root_page_id FROM site WHERE id = 1`,
	).Scan(&sm.Site.Name, &sm.Site.Domain, &sm.Site.RootNotionPageID)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("querying site: %w", err)
	}

	if err := s.loadCanonical(ctx, sm); err != nil {
		return nil, err
	}
	if err := s.loadPages(ctx, sm); err != nil {
		return nil, err
	}
	if err := s.loadBlocks(ctx, sm); err != nil {
		return nil, err
	}
	return sm, nil
}

func (s *Store) loadCanonical(ctx context.Context, sm *notion.SiteMap) error {
	rows, err := s.db.QueryContext(ctx, `SELECT path, page_id FROM canonical_pages ORDER BY position`)
	if err != nil {
		return fmt.Errorf("querying canonical pages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path, pageID string
		if err := rows.Scan(&path, &pageID); err != nil {
			return fmt.Errorf("scanning canonical page: %w", err)
		}
		sm.AddPage(path, pageID, nil)
	}
	return rows.Err()
}

func (s *Store) loadPages(ctx context.Context, sm *notion.SiteMap) error {
	rows, err := s.db.QueryContext(ctx, `SELECT page_id FROM pages`)
	if err != nil {
		return fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pageID string
		if err := rows.Scan(&pageID); err != nil {
			return fmt.Errorf("scanning page: %w", err)
		}
		sm.PageMap[pageID] = notion.NewRecordMap()
	}
	return rows.Err()
}

func (s *Store) loadBlocks(ctx context.Context, sm *notion.SiteMap) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page_id, id, type, parent_id, parent_table, title, text,
			   content, created_time, last_edited_time
		FROM blocks`)
	if err != nil {
		return fmt.Errorf("querying blocks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pageID  string
			content string
			b       notion.Block
		)
		if err := rows.Scan(
			&pageID, &b.ID, &b.Type, &b.ParentID, &b.ParentTable, &b.Properties.Title, &b.Text,
			&content, &b.CreatedTime, &b.LastEditedTime,
		); err != nil {
			return fmt.Errorf("scanning block: %w", err)
		}
		if err := json.Unmarshal([]byte(content), &b.Content); err != nil {
			return fmt.Errorf("decoding content of block %s: %w", b.ID, err)
		}
		if len(b.Content) == 0 {
			b.Content = nil
		}
		rm, ok := sm.PageMap[pageID]
		if !ok {
			continue
		}
		block := b
		rm.Add(&block)
	}
	return rows.Err()
}
