package database

import (
	"database/sql"
	"time"

	"github.com/codescope/codescope/pkg/types"
)

// UpsertStatus reports what a per-file upsert did.
type UpsertStatus int

const (
	// FileUnchanged: the stored fingerprint matches; nothing written.
	FileUnchanged UpsertStatus = iota
	// FileInserted: the path was not in the index before.
	FileInserted
	// FileUpdated: the fingerprint changed and all owned rows were
	// replaced.
	FileUpdated
)

// UsageTable selects which auxiliary usage table an upsert writes.
type UsageTable string

const (
	XmlUsages        UsageTable = "xml_usages"
	StoryboardUsages UsageTable = "storyboard_usages"
)

// UpsertSourceFile runs the per-file write protocol in one transaction:
// an unchanged fingerprint is a no-op; otherwise the file row is
// deleted (cascading away its symbols, parents and refs) and rebuilt
// from the extractor output. On error the prior state is preserved.
func (db *DB) UpsertSourceFile(path, hash string, mtime time.Time, symbols []types.ParsedSymbol, refs []types.ParsedRef) (UpsertStatus, error) {
	status := FileUnchanged

	err := db.Transaction(func(tx *sql.Tx) error {
		existed, unchanged, err := replaceFileRow(tx, path, hash, mtime)
		if err != nil || unchanged {
			return err
		}

		fileID, err := insertFileRow(tx, path, hash, mtime)
		if err != nil {
			return err
		}

		symStmt, err := tx.Prepare(`INSERT INTO symbols (file_id, name, kind, line, signature) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer symStmt.Close()

		parentStmt, err := tx.Prepare(`INSERT INTO parents (symbol_id, parent_name, inherit_kind) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer parentStmt.Close()

		for _, s := range symbols {
			res, err := symStmt.Exec(fileID, s.Name, s.Kind.String(), s.Line, s.Signature)
			if err != nil {
				return err
			}
			symbolID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for _, p := range s.Parents {
				if _, err := parentStmt.Exec(symbolID, p.Name, string(p.Kind)); err != nil {
					return err
				}
			}
		}

		refStmt, err := tx.Prepare(`INSERT INTO refs (file_id, name, line, context) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer refStmt.Close()

		for _, r := range refs {
			if _, err := refStmt.Exec(fileID, r.Name, r.Line, r.Context); err != nil {
				return err
			}
		}

		if existed {
			status = FileUpdated
		} else {
			status = FileInserted
		}
		return nil
	})

	return status, err
}

// UpsertUsageFile is the same protocol for layout and UI descriptor
// files, whose only children are usage rows.
func (db *DB) UpsertUsageFile(path, hash string, mtime time.Time, table UsageTable, usages []types.Usage) (UpsertStatus, error) {
	status := FileUnchanged

	err := db.Transaction(func(tx *sql.Tx) error {
		existed, unchanged, err := replaceFileRow(tx, path, hash, mtime)
		if err != nil || unchanged {
			return err
		}

		fileID, err := insertFileRow(tx, path, hash, mtime)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO ` + string(table) + ` (file_id, class_name, line) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, u := range usages {
			if _, err := stmt.Exec(fileID, u.ClassName, u.Line); err != nil {
				return err
			}
		}

		if existed {
			status = FileUpdated
		} else {
			status = FileInserted
		}
		return nil
	})

	return status, err
}

// replaceFileRow checks the stored fingerprint for path and deletes the
// row (with all cascaded children) when it differs.
func replaceFileRow(tx *sql.Tx, path, hash string, mtime time.Time) (existed, unchanged bool, err error) {
	var id int64
	var storedHash string

	err = tx.QueryRow(`SELECT id, hash FROM files WHERE path = ?`, path).Scan(&id, &storedHash)
	switch {
	case err == sql.ErrNoRows:
		return false, false, nil
	case err != nil:
		return false, false, err
	}

	if storedHash == hash {
		return true, true, nil
	}

	_, err = tx.Exec(`DELETE FROM files WHERE id = ?`, id)
	return true, false, err
}

func insertFileRow(tx *sql.Tx, path, hash string, mtime time.Time) (int64, error) {
	res, err := tx.Exec(`INSERT INTO files (path, hash, mtime) VALUES (?, ?, ?)`, path, hash, mtime.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// PruneMissing deletes every file row whose path is absent from keep,
// cascading away all owned rows. Returns the number of files removed.
func (db *DB) PruneMissing(keep map[string]struct{}) (int, error) {
	rows, err := db.conn.Query(`SELECT id, path FROM files`)
	if err != nil {
		return 0, err
	}

	type stale struct{ id int64 }
	var gone []stale
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			rows.Close()
			return 0, err
		}
		if _, ok := keep[path]; !ok {
			gone = append(gone, stale{id})
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	deleted := 0
	for _, s := range gone {
		if _, err := db.conn.Exec(`DELETE FROM files WHERE id = ?`, s.id); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}

// candidateKinds are the symbol kinds the unused analysis considers.
const candidateKinds = `('class', 'interface', 'function', 'object', 'enum', 'protocol', 'struct')`

// UnusedCandidates selects the symbols the analyzer probes, ordered by
// (path, line). A module prefix restricts by file path; otherwise
// exportOnly restricts to names starting with an uppercase letter.
func (db *DB) UnusedCandidates(modulePrefix string, exportOnly bool) ([]types.SearchResult, error) {
	var (
		rows *sql.Rows
		err  error
	)

	switch {
	case modulePrefix != "":
		rows, err = db.conn.Query(`
			SELECT s.name, s.kind, s.line, s.signature, f.path
			FROM symbols s
			JOIN files f ON s.file_id = f.id
			WHERE f.path LIKE ?
			  AND s.kind IN `+candidateKinds+`
			ORDER BY f.path, s.line`, modulePrefix+"%")
	case exportOnly:
		rows, err = db.conn.Query(`
			SELECT s.name, s.kind, s.line, s.signature, f.path
			FROM symbols s
			JOIN files f ON s.file_id = f.id
			WHERE s.kind IN ` + candidateKinds + `
			  AND s.name GLOB '[A-Z]*'
			ORDER BY f.path, s.line`)
	default:
		rows, err = db.conn.Query(`
			SELECT s.name, s.kind, s.line, s.signature, f.path
			FROM symbols s
			JOIN files f ON s.file_id = f.id
			WHERE s.kind IN ` + candidateKinds + `
			ORDER BY f.path, s.line`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSearchResults(rows)
}

// HasRef reports whether any textual reference with the given name
// exists.
func (db *DB) HasRef(name string) (bool, error) {
	return db.exists(`SELECT EXISTS(SELECT 1 FROM refs WHERE name = ?)`, name)
}

// HasXmlUsage reports whether the class name is referenced from a
// layout/markup file.
func (db *DB) HasXmlUsage(name string) (bool, error) {
	return db.exists(`SELECT EXISTS(SELECT 1 FROM xml_usages WHERE class_name = ?)`, name)
}

// HasStoryboardUsage reports whether the class name is referenced from
// a UI descriptor file.
func (db *DB) HasStoryboardUsage(name string) (bool, error) {
	return db.exists(`SELECT EXISTS(SELECT 1 FROM storyboard_usages WHERE class_name = ?)`, name)
}

func (db *DB) exists(query string, args ...interface{}) (bool, error) {
	var found bool
	if err := db.conn.QueryRow(query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// SearchSymbols looks up symbols by name prefix.
func (db *DB) SearchSymbols(query string, limit int) ([]types.SearchResult, error) {
	rows, err := db.conn.Query(`
		SELECT s.name, s.kind, s.line, s.signature, f.path
		FROM symbols s
		JOIN files f ON s.file_id = f.id
		WHERE s.name LIKE ?
		ORDER BY s.name, f.path, s.line
		LIMIT ?`, query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSearchResults(rows)
}

// SymbolsByFile returns the symbols owned by a file path, in line
// order.
func (db *DB) SymbolsByFile(path string) ([]types.SearchResult, error) {
	rows, err := db.conn.Query(`
		SELECT s.name, s.kind, s.line, s.signature, f.path
		FROM symbols s
		JOIN files f ON s.file_id = f.id
		WHERE f.path = ?
		ORDER BY s.line`, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSearchResults(rows)
}

func scanSearchResults(rows *sql.Rows) ([]types.SearchResult, error) {
	var results []types.SearchResult
	for rows.Next() {
		var r types.SearchResult
		if err := rows.Scan(&r.Name, &r.Kind, &r.Line, &r.Signature, &r.Path); err != nil {
			return nil, err
		}
		// Reject rows written with a label outside the closed kind set.
		if _, err := types.ParseSymbolKind(r.Kind); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
