// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/framegrace/texelui/internal/devshell"
)

func main() {
	appName := flag.String("app", "", "name of the app to run ("+strings.Join(devshell.Names(), ", ")+")")
	logPath := flag.String("log", "", "append logs to this file")
	flag.Parse()
	if *appName == "" {
		fmt.Fprintln(os.Stderr, "please specify -app")
		os.Exit(2)
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if err := devshell.RunApp(*appName, flag.Args()); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("run failed: %v", err)
	}
}
