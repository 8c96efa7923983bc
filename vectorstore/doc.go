// Copyright 2026 Project Hog
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


// Package vectorstore provides the abstraction over the external vector
// index holding embedded message rows.
//
// The Index interface decouples the pipeline and search layers from the
// concrete store. Writes are idempotent upserts keyed by row id; reads are
// approximate-nearest-neighbor queries. The store is the only durable state
// in the system — this module never deletes rows or tracks their status
// locally.
//
// # Implementation Packages
//
//   - vectorstore/turbopuffer: production HTTP/JSON client
//   - vectorstore/mock: in-memory index for unit tests
//
// Constructors return the Index interface to enforce abstraction.
package vectorstore
