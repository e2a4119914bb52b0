// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonfix

import "encoding/json"

// Marshal encodes v as JSON with the standard encoder, then renders the
// result according to cfg. It gives an arbitrary Go value the same layout
// control as a fix: pretty-printing, space padding, and key sorting all
// apply. An encoding failure is reported as a *BridgeError.
func Marshal(v any, cfg Config) (string, error) {
	bits, err := json.Marshal(v)
	if err != nil {
		return "", &BridgeError{Err: err}
	}
	return FixWithConfig(string(bits), cfg)
}

// Unmarshal decodes input into v with the standard strict decoder. The input
// is not repaired first; use UnmarshalFixed for that. A decoding failure is
// reported as a *BridgeError.
func Unmarshal(input string, v any) error {
	if err := json.Unmarshal([]byte(input), v); err != nil {
		return &BridgeError{Err: err}
	}
	return nil
}

// UnmarshalFixed repairs input according to cfg, then decodes the repaired
// text into v with the standard strict decoder. A repair failure is reported
// as a *SyntaxError and a decoding failure as a *BridgeError.
func UnmarshalFixed(input string, v any, cfg Config) error {
	fixed, err := FixWithConfig(input, cfg)
	if err != nil {
		return err
	}
	return Unmarshal(fixed, v)
}
