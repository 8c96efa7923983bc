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


// Package storage provides the local bookkeeping layer for Synergy.
//
// The external vector store owns all retrievable data; this layer keeps only
// operational records — a ledger of which documents were indexed and
// per-channel backlog checkpoints. Repository interfaces decouple the
// pipeline from the concrete backend so alternative backends can be used
// interchangeably.
//
// Public constructors in backend packages return interface types:
//
//	ledger, err := badger.NewLedgerRepository(backend)  // storage.LedgerRepository
//
// All repository implementations must be thread-safe and accept a
// context.Context for cancellation.
package storage
