// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command texeledit-dual opens two editors side by side that share one kill
// ring. Tab switches between them.
package main

import (
	"flag"
	"log"

	"github.com/framegrace/texelui/internal/devshell"
)

func main() {
	flag.Parse()
	if err := devshell.RunApp("texeledit-dual", flag.Args()); err != nil {
		log.Fatalf("texeledit-dual: %v", err)
	}
}
