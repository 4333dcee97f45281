package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"content-templates/internal/types"
)

const defaultDiscoverWorkers = 4

func (s Service) Variants(_ context.Context, req VariantsRequest) (VariantsResult, error) {
	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		return VariantsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("content type is required")
	}
	return VariantsResult{
		ContentType: contentType,
		Variants:    s.variantDiscovery().VariantsForType(contentType),
	}, nil
}

func (s Service) Versions(_ context.Context, req VersionsRequest) (VersionsResult, error) {
	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		return VersionsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("content type is required")
	}
	variant := strings.TrimSpace(req.Variant)
	if variant == "" {
		variant = s.Settings.Defaults().Variant
	}
	if variant == "" {
		variant = s.Settings.Provider().Source
	}
	if variant == "" {
		return VersionsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("variant is required")
	}
	return VersionsResult{
		ContentType: contentType,
		Variant:     variant,
		Versions:    s.versionDiscovery().VersionsForTypeAndVariant(contentType, variant),
	}, nil
}

// Discover warms the discovery caches for every content type that has
// variant candidates and writes the result as a discovery index.
func (s Service) Discover(ctx context.Context, req DiscoverRequest) (DiscoverResult, error) {
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return DiscoverResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	contentTypes := s.Candidates.ContentTypes()
	workerCount := req.Workers
	if workerCount <= 0 {
		workerCount = defaultDiscoverWorkers
	}
	if len(contentTypes) < workerCount {
		workerCount = len(contentTypes)
	}

	variantDiscovery := s.variantDiscovery()
	versionDiscovery := s.versionDiscovery()
	index := types.DiscoveryIndex{
		GeneratedAt:  timeNow(s.Clock).Format(time.RFC3339),
		ContentTypes: map[string]map[string][]string{},
	}
	var mu sync.Mutex
	sem := make(chan struct{}, max(workerCount, 1))
	var wg sync.WaitGroup
	for _, contentType := range contentTypes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}
			entry := map[string][]string{}
			for _, variant := range variantDiscovery.VariantsForType(contentType) {
				entry[variant] = versionDiscovery.VersionsForTypeAndVariant(contentType, variant)
			}
			mu.Lock()
			index.ContentTypes[contentType] = entry
			mu.Unlock()
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return DiscoverResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("discovery cancelled").
			WithCause(err)
	}

	result := DiscoverResult{OutputPath: output, ContentTypes: len(index.ContentTypes)}
	for _, variants := range index.ContentTypes {
		result.Variants += len(variants)
		for _, versions := range variants {
			result.Versions += len(versions)
		}
	}
	if err := s.IndexWriter.Write(output, index); err != nil {
		return DiscoverResult{}, err
	}
	log.Info().
		Int("content_types", result.ContentTypes).
		Int("variants", result.Variants).
		Int("versions", result.Versions).
		Str("output", output).
		Msg("discovery index written")
	return result, nil
}
