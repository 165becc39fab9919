// Package config provides configuration loading for the batch tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds batch processing settings. Every field is optional in the
// YAML file; missing fields keep their defaults.
type Config struct {
	// Subset is the folder under the dataset root that holds the drives.
	Subset string `yaml:"subset"`
	// Camera is the per-drive camera folder with the RGB frames.
	Camera string `yaml:"camera"`
	// Extension is the frame file extension without the dot.
	Extension string `yaml:"extension"`
	// Container is the video container extension without the dot.
	Container string `yaml:"container"`
	// FPS is the frame rate of the output videos.
	FPS float64 `yaml:"fps"`
	// OutputDir receives the generated videos.
	OutputDir string `yaml:"output_dir"`
}

// Defaults returns the KITTI defaults: PNG frames from the left color
// camera at the dataset's native 10 fps.
func Defaults() Config {
	return Config{
		Subset:    "train_copy",
		Camera:    "image_02",
		Extension: "png",
		Container: "mp4",
		FPS:       10.0,
		OutputDir: "kitti_videos",
	}
}

// Load reads a YAML config file over the defaults. Unknown fields are
// rejected.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
