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


// Package storage defines the storage contracts for manualqa and the
// in-memory document store.
//
// # Document Store
//
// Store holds at most one active document per collection. Documents and
// their section vectors are grouped into immutable Snapshots that are
// replaced wholesale; concurrent rankings read a consistent snapshot
// without locking during scoring.
//
//	store := storage.NewStore()
//	err := store.SetDocument("sonata", doc)
//	snapshot, ok := store.Snapshot("sonata")
//
// # Cache Persistence
//
// CacheRepository persists one schema-versioned embedding cache blob
// per collection, so section vectors survive restarts and manuals do
// not need to be re-embedded on every start. The blob is validated on
// load: an unknown schema version or a vector count that does not
// match the sections is a hard error. Validation against the currently
// active document (fingerprint comparison) happens when the vectors
// are attached to the store.
//
// The BadgerDB-backed implementation lives in storage/badger.
package storage
