package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath     = "config.yaml"
	defaultBackgroundDir  = "./assets/backgrounds"
	defaultOutputDir      = "./output"
	defaultCacheDir       = "./.cache"
	defaultResolution     = "720x1280"
	defaultFrameRate      = 24
	defaultCaptionSeconds = 3.0
	defaultCaptionFadeMs  = 300
	defaultCaptionFont    = "DejaVu Sans"
	defaultCaptionSize    = 64
	defaultPrimaryColor   = "#FFFFFF"
	defaultOutlineColor   = "#000000"
	defaultOutlineSize    = 4
	defaultShadowSize     = 2
	defaultLanguage       = "en"
	defaultFadeIn         = 1.0
	defaultFadeOut        = 1.0
	defaultMusicVolume    = 0.15
	defaultMusicFadeIn    = 1.0
	defaultMusicFadeOut   = 2.0
	defaultFontPath       = "./assets/fonts/DejaVuSans-Bold.ttf"
	defaultTitleSize      = 60.0
	defaultTagSize        = 35.0
	defaultQRSize         = 256
	defaultQROverlaySize  = 180
	defaultQRMargin       = 40
	defaultHookModel      = "llama-3.3-70b-versatile"
	defaultGCSPrefix      = "backgrounds"
	defaultServerHost     = "0.0.0.0"
	defaultServerPort     = 8080
	defaultMaxAttempts    = 5
	defaultLockoutSeconds = 60
)

type Config struct {
	AppPassword string
	AdNetworkID string
	GroqAPIKey  string
	GCSBucket   string

	Server    ServerConfig    `yaml:"server"`
	Video     VideoConfig     `yaml:"video"`
	Audio     AudioConfig     `yaml:"audio"`
	Captions  CaptionsConfig  `yaml:"captions"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
	QR        QRConfig        `yaml:"qr"`
	Script    ScriptConfig    `yaml:"script"`
	GCS       GCSConfig       `yaml:"gcs"`
	Auth      AuthConfig      `yaml:"auth"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type VideoConfig struct {
	BackgroundDir string `yaml:"background_dir"`
	OutputDir     string `yaml:"output_dir"`
	CacheDir      string `yaml:"cache_dir"`
	Resolution    string `yaml:"resolution"`
	FrameRate     int    `yaml:"frame_rate"`
}

type AudioConfig struct {
	Language     string  `yaml:"language"`
	FadeIn       float64 `yaml:"fade_in"`
	FadeOut      float64 `yaml:"fade_out"`
	MusicVolume  float64 `yaml:"music_volume"`
	MusicFadeIn  float64 `yaml:"music_fade_in"`
	MusicFadeOut float64 `yaml:"music_fade_out"`
}

type CaptionsConfig struct {
	FontName     string  `yaml:"font_name"`
	FontSize     int     `yaml:"font_size"`
	PrimaryColor string  `yaml:"primary_color"`
	OutlineColor string  `yaml:"outline_color"`
	OutlineSize  int     `yaml:"outline_size"`
	ShadowSize   int     `yaml:"shadow_size"`
	Bold         bool    `yaml:"bold"`
	LineSeconds  float64 `yaml:"line_seconds"`
	FadeInMs     int     `yaml:"fade_in_ms"`
}

type ThumbnailConfig struct {
	FontPath  string  `yaml:"font_path"`
	TitleSize float64 `yaml:"title_size"`
	TagSize   float64 `yaml:"tag_size"`
}

type QRConfig struct {
	Size        int `yaml:"size"`
	OverlaySize int `yaml:"overlay_size"`
	Margin      int `yaml:"margin"`
}

type ScriptConfig struct {
	HookEnabled bool   `yaml:"hook_enabled"`
	HookModel   string `yaml:"hook_model"`
}

type GCSConfig struct {
	Enabled       bool   `yaml:"enabled"`
	BackgroundDir string `yaml:"background_dir"`
}

type AuthConfig struct {
	MaxAttempts    int `yaml:"max_attempts"`
	LockoutSeconds int `yaml:"lockout_seconds"`
}

func Load() *Config {
	return LoadFrom(defaultConfigPath)
}

func LoadFrom(path string) *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppPassword: os.Getenv("APP_PASSWORD"),
		AdNetworkID: os.Getenv("AD_NETWORK_ID"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
	}

	loadYAML(cfg, path)
	ApplyDefaults(cfg)

	return cfg
}

func loadYAML(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("No config file found, using defaults", "path", path)
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config file", "path", path, "error", err)
	}
}

func ApplyDefaults(cfg *Config) {
	applyServerDefaults(cfg)
	applyVideoDefaults(cfg)
	applyAudioDefaults(cfg)
	applyCaptionsDefaults(cfg)
	applyThumbnailDefaults(cfg)
	applyQRDefaults(cfg)
	applyScriptDefaults(cfg)
	applyGCSDefaults(cfg)
	applyAuthDefaults(cfg)
}

func applyServerDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
}

func applyVideoDefaults(cfg *Config) {
	if cfg.Video.BackgroundDir == "" {
		cfg.Video.BackgroundDir = defaultBackgroundDir
	}
	if cfg.Video.OutputDir == "" {
		cfg.Video.OutputDir = defaultOutputDir
	}
	if cfg.Video.CacheDir == "" {
		cfg.Video.CacheDir = defaultCacheDir
	}
	if cfg.Video.Resolution == "" {
		cfg.Video.Resolution = defaultResolution
	}
	if cfg.Video.FrameRate == 0 {
		cfg.Video.FrameRate = defaultFrameRate
	}
}

func applyAudioDefaults(cfg *Config) {
	if cfg.Audio.Language == "" {
		cfg.Audio.Language = defaultLanguage
	}
	if cfg.Audio.FadeIn == 0 {
		cfg.Audio.FadeIn = defaultFadeIn
	}
	if cfg.Audio.FadeOut == 0 {
		cfg.Audio.FadeOut = defaultFadeOut
	}
	if cfg.Audio.MusicVolume == 0 {
		cfg.Audio.MusicVolume = defaultMusicVolume
	}
	if cfg.Audio.MusicFadeIn == 0 {
		cfg.Audio.MusicFadeIn = defaultMusicFadeIn
	}
	if cfg.Audio.MusicFadeOut == 0 {
		cfg.Audio.MusicFadeOut = defaultMusicFadeOut
	}
}

func applyCaptionsDefaults(cfg *Config) {
	if cfg.Captions.FontName == "" {
		cfg.Captions.FontName = defaultCaptionFont
	}
	if cfg.Captions.FontSize == 0 {
		cfg.Captions.FontSize = defaultCaptionSize
	}
	if cfg.Captions.PrimaryColor == "" {
		cfg.Captions.PrimaryColor = defaultPrimaryColor
	}
	if cfg.Captions.OutlineColor == "" {
		cfg.Captions.OutlineColor = defaultOutlineColor
	}
	if cfg.Captions.OutlineSize == 0 {
		cfg.Captions.OutlineSize = defaultOutlineSize
	}
	if cfg.Captions.ShadowSize == 0 {
		cfg.Captions.ShadowSize = defaultShadowSize
	}
	if cfg.Captions.LineSeconds == 0 {
		cfg.Captions.LineSeconds = defaultCaptionSeconds
	}
	if cfg.Captions.FadeInMs == 0 {
		cfg.Captions.FadeInMs = defaultCaptionFadeMs
	}
}

func applyThumbnailDefaults(cfg *Config) {
	if cfg.Thumbnail.FontPath == "" {
		cfg.Thumbnail.FontPath = defaultFontPath
	}
	if cfg.Thumbnail.TitleSize == 0 {
		cfg.Thumbnail.TitleSize = defaultTitleSize
	}
	if cfg.Thumbnail.TagSize == 0 {
		cfg.Thumbnail.TagSize = defaultTagSize
	}
}

func applyQRDefaults(cfg *Config) {
	if cfg.QR.Size == 0 {
		cfg.QR.Size = defaultQRSize
	}
	if cfg.QR.OverlaySize == 0 {
		cfg.QR.OverlaySize = defaultQROverlaySize
	}
	if cfg.QR.Margin == 0 {
		cfg.QR.Margin = defaultQRMargin
	}
}

func applyScriptDefaults(cfg *Config) {
	if cfg.Script.HookModel == "" {
		cfg.Script.HookModel = defaultHookModel
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.BackgroundDir == "" {
		cfg.GCS.BackgroundDir = defaultGCSPrefix
	}
}

func applyAuthDefaults(cfg *Config) {
	if cfg.Auth.MaxAttempts == 0 {
		cfg.Auth.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Auth.LockoutSeconds == 0 {
		cfg.Auth.LockoutSeconds = defaultLockoutSeconds
	}
}
