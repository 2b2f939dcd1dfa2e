// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Spin    SpinConfig    `yaml:"spin" toml:"spin"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// CameraConfig holds projection and orbit settings. Angles are in degrees.
type CameraConfig struct {
	FOV      float32 `yaml:"fov" toml:"fov"`
	Near     float32 `yaml:"near" toml:"near"`
	Far      float32 `yaml:"far" toml:"far"`
	Distance float32 `yaml:"distance" toml:"distance"`
	Phi      float32 `yaml:"phi" toml:"phi"`
	Theta    float32 `yaml:"theta" toml:"theta"`
	Orbit    bool    `yaml:"orbit" toml:"orbit"`
}

// SpinConfig holds the box's angular velocity in radians per second.
type SpinConfig struct {
	X float32 `yaml:"x" toml:"x"`
	Y float32 `yaml:"y" toml:"y"`
	Z float32 `yaml:"z" toml:"z"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "s3 box",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:      45,
			Near:     0.1,
			Far:      100,
			Distance: 10,
			Phi:      90,
			Theta:    0,
		},
		Spin: SpinConfig{
			X: 0.25,
			Y: 2,
			Z: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
