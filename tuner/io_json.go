package tuner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
)

const modelLayoutTag = "sigmoid_mlp_v1"

type matrixJSON struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

type networkJSON struct {
	Layout string       `json:"layout"`
	Sizes  []int        `json:"sizes"`
	Layers []matrixJSON `json:"layers"`
}

// SaveJSON writes the network's weights to path, replacing the file atomically.
func SaveJSON(path string, net *Network) error {
	payload := networkJSON{Layout: modelLayoutTag, Sizes: net.Sizes()}
	for _, m := range net.layers {
		payload.Layers = append(payload.Layers, matrixJSON{Rows: m.Rows, Cols: m.Cols, Data: m.Data})
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode weights: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadJSON reads weights written by SaveJSON.
func LoadJSON(path string) (*Network, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p networkJSON
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode weights %s: %w", path, err)
	}
	if p.Layout != modelLayoutTag {
		return nil, fmt.Errorf("decode weights %s: unknown layout %q", path, p.Layout)
	}
	layers := make([]Matrix, len(p.Layers))
	for i, m := range p.Layers {
		layers[i] = Matrix{Rows: m.Rows, Cols: m.Cols, Data: m.Data}
	}
	net, err := NewNetworkFromWeights(layers)
	if err != nil {
		return nil, fmt.Errorf("decode weights %s: %w", path, err)
	}
	return net, nil
}

// LoadOrInit loads the network stored at path. When the file does not exist
// a fresh network with the given sizes is created and saved there; created
// reports that case. Any other failure, including a stored network whose
// input width differs from sizes[0], is returned.
func LoadOrInit(path string, sizes []int, rng *rand.Rand) (net *Network, created bool, err error) {
	net, err = LoadJSON(path)
	switch {
	case err == nil:
		if len(sizes) > 0 && net.InputWidth() != sizes[0] {
			return nil, false, fmt.Errorf("weights %s: input width %d, encoder produces %d", path, net.InputWidth(), sizes[0])
		}
		return net, false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, err
	}

	net, err = NewNetwork(sizes, rng)
	if err != nil {
		return nil, false, err
	}
	if err := SaveJSON(path, net); err != nil {
		return nil, false, fmt.Errorf("save fresh weights: %w", err)
	}
	return net, true, nil
}
