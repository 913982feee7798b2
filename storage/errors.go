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


package storage

import "errors"

var (
	// ErrNoActiveDocument indicates the collection holds no document.
	ErrNoActiveDocument = errors.New("collection has no active document")

	// ErrCacheNotFound indicates no persisted cache exists for the collection.
	ErrCacheNotFound = errors.New("embedding cache not found")

	// ErrCacheMismatch indicates a cache does not match the collection's
	// active document (stale fingerprint or misaligned vectors).
	ErrCacheMismatch = errors.New("embedding cache does not match active document")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
