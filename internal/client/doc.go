// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows, the services and the background weather
// refresh into a single process lifecycle: initialize the session manager,
// run the login flow until someone signs in (unless a session was restored),
// then run the main loop until quit or sign-out.
package client
