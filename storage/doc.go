// Copyright 2025 Poiesic Systems
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


// Package storage provides the storage abstraction layer for landscape runs.
//
// This package defines store interfaces that decouple storage implementation
// from business logic. The vector store caches document embeddings across
// runs (candidate IDs are content-derived, so a cached vector stays valid for
// the same source record); the assessment store archives completed
// assessments for later listing and retrieval.
package storage
