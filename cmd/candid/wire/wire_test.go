// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	input := `{"canister_id": 42, "method_name": "query", "arg": "payload"}`

	var encoded bytes.Buffer
	if err := encodeWire(strings.NewReader(input), &encoded); err != nil {
		t.Fatalf("encodeWire: %v", err)
	}

	var decoded bytes.Buffer
	if err := decodeWire(bytes.NewReader(encoded.Bytes()), &decoded, true); err != nil {
		t.Fatalf("decodeWire: %v", err)
	}

	var message map[string]any
	if err := json.Unmarshal(decoded.Bytes(), &message); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	// 42 round-trips through the canister_id rewrite as hex text.
	if got := message["canister_id"]; got != "2a" {
		t.Errorf("canister_id = %v, want %q", got, "2a")
	}
	if got := message["method_name"]; got != "query" {
		t.Errorf("method_name = %v, want %q", got, "query")
	}
}

func TestEncodeNegativeInteger(t *testing.T) {
	var encoded bytes.Buffer
	if err := encodeWire(strings.NewReader(`{"offset": -5}`), &encoded); err != nil {
		t.Fatalf("encodeWire: %v", err)
	}

	var decoded bytes.Buffer
	if err := decodeWire(bytes.NewReader(encoded.Bytes()), &decoded, true); err != nil {
		t.Fatalf("decodeWire: %v", err)
	}

	var message map[string]json.Number
	if err := json.Unmarshal(decoded.Bytes(), &message); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got := message["offset"].String(); got != "-5" {
		t.Errorf("offset = %s, want -5", got)
	}
}

func TestDiagShowsEnvelope(t *testing.T) {
	var encoded bytes.Buffer
	if err := encodeWire(strings.NewReader(`{"arg": "x"}`), &encoded); err != nil {
		t.Fatalf("encodeWire: %v", err)
	}

	var notation bytes.Buffer
	if err := diagWire(bytes.NewReader(encoded.Bytes()), &notation); err != nil {
		t.Fatalf("diagWire: %v", err)
	}
	if !strings.Contains(notation.String(), "55799") {
		t.Errorf("diagnostic notation %q does not show the self-describe tag", notation.String())
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := decodeWire(strings.NewReader(""), &out, false); err == nil {
		t.Error("decodeWire with empty input succeeded, want error")
	}
}
