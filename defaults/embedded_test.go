// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package defaults

import (
	"encoding/json"
	"testing"
)

func TestEmbeddedFilesAreValidJSON(t *testing.T) {
	data, err := SystemConfig()
	if err != nil {
		t.Fatalf("SystemConfig: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("texelui.json: %v", err)
	}
	data, err = AppConfig("texeledit")
	if err != nil {
		t.Fatalf("AppConfig: %v", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("texeledit config: %v", err)
	}
	if _, err := AppConfig(""); err == nil {
		t.Fatalf("expected error for empty app name")
	}
	if _, err := AppConfig("missing"); err == nil {
		t.Fatalf("expected error for unknown app")
	}
}
