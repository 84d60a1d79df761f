package candidates

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	appErrors "userpicker/internal/errors"
	"userpicker/internal/picker"
)

const candidatesKey = "candidates"

// FileSource reads a `candidates:` list from a YAML, JSON or TOML file.
type FileSource struct {
	Path string
}

// NewFileSource returns a source for path; the format follows the extension.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

func (s *FileSource) Load(ctx context.Context) ([]picker.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(s.Path)), ".")
	switch ext {
	case "yaml", "yml", "json", "toml":
	default:
		return nil, appErrors.Newf(appErrors.CodeConfigurationError,
			"unsupported candidate file type %q (want yaml, json or toml)", filepath.Ext(s.Path))
	}

	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, fmt.Sprintf("read %s", s.Path), err)
	}

	var records []record
	if err := v.UnmarshalKey(candidatesKey, &records); err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decode %s", s.Path), err)
	}

	out := make([]picker.Candidate, 0, len(records))
	for i, r := range records {
		c := r.candidate()
		if err := requireLabel(c, fmt.Sprintf("%s: candidate %d", s.Path, i)); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
