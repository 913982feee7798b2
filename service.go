// Copyright 2025 Mobidoc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package manualqa

import (
	"log/slog"

	"github.com/mobidoc/manualqa/ai"
	"github.com/mobidoc/manualqa/ai/openai"
	"github.com/mobidoc/manualqa/ingestion"
	"github.com/mobidoc/manualqa/search"
	"github.com/mobidoc/manualqa/storage"
	"github.com/mobidoc/manualqa/storage/badger"
)

// Service wires the manual QA retrieval core together: the in-memory
// document store, the persisted embedding cache, and the embedding
// provider. It is the entry point for embedding callers.
type Service struct {
	backend   *badger.Backend
	cacheRepo storage.CacheRepository
	store     *storage.Store
	provider  ai.AIProvider
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// NewService opens the embedding cache at filePath and initializes
// the retrieval components.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	// Apply options
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create cache repository
	cacheRepo, err := badger.NewCacheRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		cacheRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:   backend,
		cacheRepo: cacheRepo,
		store:     storage.NewStore(),
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

func (s *Service) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.cacheRepo.Close(); err != nil {
		s.logger.Error("error closing cache repository", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Service) Store() *storage.Store {
	return s.store
}

func (s *Service) CacheRepository() storage.CacheRepository {
	return s.cacheRepo
}

func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.store, s.cacheRepo, s.provider, opts...)
}

func (s *Service) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.store, s.provider, opts...)
}
