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

import (
	"fmt"

	"github.com/mobidoc/manualqa/core"
)

// MarshalCache serializes an EmbeddingCache to bytes.
func MarshalCache(cache *core.EmbeddingCache) []byte {
	buf := make([]byte, core.EmbeddingCacheMUS.Size(*cache))
	core.EmbeddingCacheMUS.Marshal(*cache, buf)
	return buf
}

// UnmarshalCache deserializes an EmbeddingCache from bytes.
func UnmarshalCache(data []byte) (*core.EmbeddingCache, error) {
	cache, _, err := core.EmbeddingCacheMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &cache, nil
}
