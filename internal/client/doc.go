// SPDX-License-Identifier: Apache-2.0

// Package client implements the sync client application runtime.
//
// It wires storage, client services, and background workers into a single
// process lifecycle: a long-running daemon for the sync loop, and a lighter
// one-shot assembly for CLI commands.
package client
