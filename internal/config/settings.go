package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings are the runtime options shared by the binaries. Gameplay tuning
// is fixed and lives in the game package.
type Settings struct {
	SSH      SSHSettings   `yaml:"ssh"`
	Web      WebSettings   `yaml:"web"`
	Audio    AudioSettings `yaml:"audio"`
	LogLevel string        `yaml:"log_level"`

	// PreciseHitboxes makes collisions use the narrower hitboxes.
	PreciseHitboxes bool `yaml:"precise_hitboxes"`
}

type SSHSettings struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

type WebSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	DisplayHost string `yaml:"display_host"` // SSH host shown on the landing page
}

type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear, 1 = unchanged
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		SSH: SSHSettings{
			Host:    "::",
			Port:    "2222",
			HostKey: "/app/keys/host_key",
		},
		Web: WebSettings{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  1,
		},
		LogLevel: "info",
	}
}

// Load starts from Default, overlays the YAML file at path if it exists and
// finally applies environment overrides. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return s, fmt.Errorf("read settings: %w", err)
		default:
			if err := yaml.Unmarshal(b, &s); err != nil {
				return s, fmt.Errorf("parse settings %s: %w", path, err)
			}
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadFromEnv loads settings from the file named by BOSSRUSH_CONFIG.
func LoadFromEnv() (Settings, error) {
	return Load(GetEnv(ConfigPathEnv, ""))
}

func (s *Settings) applyEnv() error {
	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKey = GetEnv("SSH_HOST_KEY", s.SSH.HostKey)
	s.Web.Host = GetEnv("WEB_HOST", s.Web.Host)
	s.Web.Port = GetEnv("WEB_PORT", s.Web.Port)
	s.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", s.Web.DisplayHost)
	s.LogLevel = GetEnv("LOG_LEVEL", s.LogLevel)

	if v, ok := os.LookupEnv("AUDIO_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUDIO_ENABLED: %w", err)
		}
		s.Audio.Enabled = enabled
	}
	if v, ok := os.LookupEnv("AUDIO_VOLUME"); ok {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("AUDIO_VOLUME: %w", err)
		}
		s.Audio.Volume = vol
	}
	if v, ok := os.LookupEnv("PRECISE_HITBOXES"); ok {
		precise, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PRECISE_HITBOXES: %w", err)
		}
		s.PreciseHitboxes = precise
	}
	return nil
}

// SSHAddr is the listen address of the SSH server.
func (s Settings) SSHAddr() string {
	return net.JoinHostPort(s.SSH.Host, s.SSH.Port)
}

// WebAddr is the listen address of the web server.
func (s Settings) WebAddr() string {
	return net.JoinHostPort(s.Web.Host, s.Web.Port)
}
