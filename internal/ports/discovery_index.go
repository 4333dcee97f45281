package ports

import "content-templates/internal/types"

type DiscoveryIndexWriterPort interface {
	Write(path string, index types.DiscoveryIndex) error
}
