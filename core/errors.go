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


package core

import "fmt"

// ConfigError indicates a required credential or setting is absent.
// It is produced by client constructors, before any network call is made.
type ConfigError struct {
	// Setting names the missing value, e.g. "OpenAI API key".
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required setting: %s", e.Setting)
}

// UpstreamError indicates an external service responded with a failure
// status. Body carries the raw response body for diagnostics.
type UpstreamError struct {
	Service    string // "embeddings" or "vectorstore"
	Op         string // operation that failed, e.g. "upsert"
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Service, e.Op, e.StatusCode, e.Body)
}

// ProtocolError indicates an external service responded with a success
// status but an unexpected or incomplete shape.
type ProtocolError struct {
	Service string
	Reason  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s returned an invalid response: %s", e.Service, e.Reason)
}
