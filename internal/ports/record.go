package ports

import "content-templates/internal/types"

type RecordStorePort interface {
	Load(path string) (types.Record, error)
	Save(path string, record types.Record) error
}
