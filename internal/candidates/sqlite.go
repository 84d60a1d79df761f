package candidates

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // pure Go driver

	appErrors "userpicker/internal/errors"
	"userpicker/internal/picker"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads candidates from a table with id, name, avatar and email
// columns. The database is opened read-only.
type SQLiteSource struct {
	Path  string
	Table string
}

// NewSQLiteSource returns a source for the given database file. An empty table
// means "users".
func NewSQLiteSource(path, table string) *SQLiteSource {
	table = strings.TrimSpace(table)
	if table == "" {
		table = "users"
	}
	return &SQLiteSource{Path: strings.TrimSpace(path), Table: table}
}

func (s *SQLiteSource) Name() string {
	return "sqlite:" + s.Path
}

// buildReadOnlyDSN creates a read-only DSN for path.
func buildReadOnlyDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLiteSource) Load(ctx context.Context) ([]picker.Candidate, error) {
	if !identPattern.MatchString(s.Table) {
		return nil, appErrors.Newf(appErrors.CodeConfigurationError, "invalid table name %q", s.Table)
	}

	db, err := sql.Open("sqlite", buildReadOnlyDSN(s.Path))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "open candidate db", err)
	}
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "ping candidate db", err)
	}

	//nolint:gosec // G201: table name is validated against identPattern
	query := fmt.Sprintf(`
		SELECT id, name, avatar, email
		FROM %s
		ORDER BY rowid
	`, s.Table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, fmt.Sprintf("query %s", s.Table), err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []picker.Candidate
	for rows.Next() {
		var (
			id, name      string
			avatar, email sql.NullString
		)
		if err := rows.Scan(&id, &name, &avatar, &email); err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, "scan candidate row", err)
		}
		where := fmt.Sprintf("%s row %d", s.Table, len(out)+1)
		if strings.TrimSpace(id) == "" {
			return nil, appErrors.Newf(appErrors.CodeInvalidCandidate, "%s has no id", where)
		}
		c := record{ID: id, Name: name, Avatar: avatar.String, Email: email.String}.candidate()
		if err := requireLabel(c, where); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "iterate candidate rows", err)
	}
	return out, nil
}
