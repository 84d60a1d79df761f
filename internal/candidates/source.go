// Package candidates loads the static candidate list the picker is built
// over. Every source is read once, up front.
package candidates

import (
	"context"
	"strings"

	"github.com/google/uuid"

	appErrors "userpicker/internal/errors"
	"userpicker/internal/picker"
)

// Source produces the candidate list.
type Source interface {
	Load(ctx context.Context) ([]picker.Candidate, error)
	Name() string
}

// Settings selects a source. DBPath wins over FilePath; with neither set the
// built-in sample is used.
type Settings struct {
	FilePath string
	DBPath   string
	Table    string
}

// FromSettings returns the source described by s.
func FromSettings(s Settings) Source {
	if db := strings.TrimSpace(s.DBPath); db != "" {
		return NewSQLiteSource(db, s.Table)
	}
	if file := strings.TrimSpace(s.FilePath); file != "" {
		return NewFileSource(file)
	}
	return Builtin()
}

// LoadOptions loads from src and wraps the result for the picker.
func LoadOptions(ctx context.Context, src Source) ([]picker.Option, error) {
	cands, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return picker.OptionsFrom(cands), nil
}

// record is the on-disk shape; label/name and avatar/image are aliases.
type record struct {
	ID     string `mapstructure:"id"`
	Label  string `mapstructure:"label"`
	Name   string `mapstructure:"name"`
	Avatar string `mapstructure:"avatar"`
	Image  string `mapstructure:"image"`
	Email  string `mapstructure:"email"`
}

func (r record) candidate() picker.Candidate {
	c := picker.Candidate{
		ID:     strings.TrimSpace(r.ID),
		Label:  firstNonEmpty(r.Label, r.Name),
		Avatar: firstNonEmpty(r.Avatar, r.Image),
		Email:  strings.TrimSpace(r.Email),
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return c
}

// requireLabel rejects candidates with nothing to display. where names the
// offending entry in the error.
func requireLabel(c picker.Candidate, where string) error {
	if c.Label == "" {
		return appErrors.Newf(appErrors.CodeInvalidCandidate, "%s has no label or name", where)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
