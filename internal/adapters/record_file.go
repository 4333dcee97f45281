package adapters

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"content-templates/internal/ports"
	"content-templates/internal/types"
)

type recordFormat string

const (
	recordFormatYAML recordFormat = "yaml"
	recordFormatTOML recordFormat = "toml"
)

// RecordFileAdapter stores one flat record per file, as YAML or TOML
// depending on the file extension.
type RecordFileAdapter struct {
	Fs afero.Fs
}

func NewRecordFileAdapter(fs afero.Fs) RecordFileAdapter {
	return RecordFileAdapter{Fs: fs}
}

func (a RecordFileAdapter) Load(path string) (types.Record, error) {
	format, err := recordFormatFor(path)
	if err != nil {
		return types.Record{}, err
	}
	data, err := afero.ReadFile(a.Fs, path)
	if err != nil {
		return types.Record{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("record file not found").
			WithCause(err)
	}
	raw := map[string]any{}
	switch format {
	case recordFormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return types.Record{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse record " + string(format)).
			WithCause(err)
	}
	record := types.RecordFromMap(raw)
	if strings.TrimSpace(record.Type) == "" {
		return types.Record{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record has no " + types.FieldType + " field: " + path)
	}
	return record, nil
}

func (a RecordFileAdapter) Save(path string, record types.Record) error {
	format, err := recordFormatFor(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case recordFormatTOML:
		data, err = toml.Marshal(record.ToMap())
	default:
		data, err = yaml.Marshal(record.ToMap())
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal record").
			WithCause(err)
	}
	if err := a.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create record directory").
			WithCause(err)
	}
	if err := afero.WriteFile(a.Fs, path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write record").
			WithCause(err)
	}
	return nil
}

func recordFormatFor(path string) (recordFormat, error) {
	if strings.TrimSpace(path) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record path is required")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return recordFormatYAML, nil
	case ".toml":
		return recordFormatTOML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported record format: " + filepath.Ext(path))
	}
}

var _ ports.RecordStorePort = RecordFileAdapter{}
