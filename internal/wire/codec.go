package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"gopkg.in/yaml.v3"
)

// EncodeJSON writes info as an indented JSON document.
func EncodeJSON(w io.Writer, info *fginfo.FrameGraphInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromInfo(info)); err != nil {
		return fmt.Errorf("failed to encode frame graph %q as JSON: %w", info.ViewName(), err)
	}
	return nil
}

// MarshalJSON returns the compact JSON document for info.
func MarshalJSON(info *fginfo.FrameGraphInfo) ([]byte, error) {
	data, err := json.Marshal(FromInfo(info))
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame graph %q as JSON: %w", info.ViewName(), err)
	}
	return data, nil
}

// DecodeJSON reads one JSON document. Unknown fields are rejected.
func DecodeJSON(r io.Reader) (*fginfo.FrameGraphInfo, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode frame graph JSON: %w", err)
	}
	return doc.ToInfo()
}

// EncodeYAML writes info as a YAML document.
func EncodeYAML(w io.Writer, info *fginfo.FrameGraphInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromInfo(info)); err != nil {
		return fmt.Errorf("failed to encode frame graph %q as YAML: %w", info.ViewName(), err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML encoder: %w", err)
	}
	return nil
}

// DecodeYAML reads one YAML document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*fginfo.FrameGraphInfo, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode frame graph YAML: %w", err)
	}
	return doc.ToInfo()
}

// UnmarshalJSON decodes a JSON document held in memory.
func UnmarshalJSON(data []byte) (*fginfo.FrameGraphInfo, error) {
	return DecodeJSON(bytes.NewReader(data))
}
