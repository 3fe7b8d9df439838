package scripts

import (
	"encoding/json"
	"fmt"

	"exhibit3d/internal/easing"
	"exhibit3d/internal/engine"
	"exhibit3d/internal/palette"
)

// decodeProp re-encodes a loosely typed JSON prop into a concrete type.
func decodeProp(props engine.Props, key string, out any) (bool, error) {
	raw, ok := props[key]
	if !ok || raw == nil {
		return false, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func paletteProp(props engine.Props, key string) (palette.Palette, error) {
	var entries []palette.Entry
	if ok, err := decodeProp(props, key, &entries); !ok || err != nil {
		return nil, err
	}
	return palette.Parse(entries)
}

// curveProp reads keys written as [time, value, inTangent, outTangent].
// Missing tangents default to zero.
func curveProp(props engine.Props, key string) ([]easing.Keyframe, error) {
	var rows [][]float32
	if ok, err := decodeProp(props, key, &rows); !ok || err != nil {
		return nil, err
	}
	keys := make([]easing.Keyframe, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("curve key %d: need at least time and value", i)
		}
		k := easing.Keyframe{Time: row[0], Value: row[1]}
		if len(row) > 2 {
			k.InTangent = row[2]
		}
		if len(row) > 3 {
			k.OutTangent = row[3]
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func curveRows(keys []easing.Keyframe) [][]float32 {
	rows := make([][]float32, len(keys))
	for i, k := range keys {
		rows[i] = []float32{k.Time, k.Value, k.InTangent, k.OutTangent}
	}
	return rows
}

func presetValue(value any) (easing.Preset, bool) {
	name, ok := value.(string)
	if !ok {
		return 0, false
	}
	p, err := easing.ParsePreset(name)
	return p, err == nil
}
