// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rowscript implements a small in-memory tabular data store
// driven by a line-oriented textual DSL.
//
// A source document declares one or more named tables, each holding
// its rows under one of three indexing disciplines (sequential,
// singly-indexed, or grouped-indexed by a primary key), optionally
// importing or cloning the structure of tables declared in other
// source documents, and optionally issuing field updates, row
// additions, and pack (serialize) directives against the result.
//
// Build parses and merges a document into a Root. Query, Update, and
// Add navigate and mutate a built Root along a small path expression
// language (e.g. "orders{7}.items[0].qty"). Pack renders a Root's
// tables back to DSL text, deterministically, such that parsing the
// packed text reproduces the same data.
//
// This package has no file-I/O, CLI, or logging surface of its own:
// Build takes a SourceLoader callback so the host decides how a
// CopyStructure or Reference path is resolved to text, and every
// diagnostic is returned as a value (an error, or a slice of
// Warnings) rather than printed.
package rowscript
