// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command line application.
//
// Every invocation opens a vault session for the selected login mode, runs
// one command against it and logs out, waiting for outstanding saves to
// reach their backend before the process exits.
package client
