package app

import (
	"context"
	"fmt"
	"log/slog"

	"promoreel/internal/llm"
	"promoreel/internal/qr"
	"promoreel/internal/script"
	"promoreel/internal/speech/translate"
	"promoreel/internal/storage"
	"promoreel/internal/thumbnail"
	"promoreel/internal/video"
	"promoreel/pkg/config"
)

// BuildService wires the real pipeline components from config.
func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	var hook script.HookGenerator
	if cfg.Script.HookEnabled && cfg.GroqAPIKey != "" {
		client, err := llm.NewGroqClient(cfg.GroqAPIKey, cfg.Script.HookModel)
		if err != nil {
			slog.Warn("Hook generation disabled", "error", err)
		} else {
			hook = client
		}
	}

	local := storage.NewLocalStorage(cfg.Video.BackgroundDir, cfg.Video.OutputDir)
	if err := local.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	var backgrounds storage.BackgroundProvider = local
	if cfg.GCS.Enabled && cfg.GCSBucket != "" {
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.BackgroundDir, cfg.Video.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("connect bucket: %w", err)
		}
		if err := gcs.EnsureCacheDir(); err != nil {
			return nil, fmt.Errorf("prepare cache: %w", err)
		}
		backgrounds = gcs
	}

	captionGen := video.NewCaptionGenerator(video.CaptionOptions{
		FontName:     cfg.Captions.FontName,
		FontSize:     cfg.Captions.FontSize,
		PrimaryColor: cfg.Captions.PrimaryColor,
		OutlineColor: cfg.Captions.OutlineColor,
		OutlineSize:  cfg.Captions.OutlineSize,
		ShadowSize:   cfg.Captions.ShadowSize,
		Bold:         cfg.Captions.Bold,
		LineSeconds:  cfg.Captions.LineSeconds,
		FadeInMs:     cfg.Captions.FadeInMs,
	})

	return NewService(ServiceOptions{
		Scripts: script.NewBuilder(hook),
		Speech:  translate.NewClient(translate.Config{Language: cfg.Audio.Language}),
		Narrator: video.NewNarrationProcessor(video.NarrationOptions{
			FadeIn:  cfg.Audio.FadeIn,
			FadeOut: cfg.Audio.FadeOut,
		}),
		Composer: video.NewComposer(video.ComposerOptions{
			Resolution:   cfg.Video.Resolution,
			FrameRate:    cfg.Video.FrameRate,
			CaptionGen:   captionGen,
			QRSize:       cfg.QR.OverlaySize,
			QRMargin:     cfg.QR.Margin,
			MusicVolume:  cfg.Audio.MusicVolume,
			MusicFadeIn:  cfg.Audio.MusicFadeIn,
			MusicFadeOut: cfg.Audio.MusicFadeOut,
		}),
		QR: qr.NewGenerator(qr.GeneratorOptions{Size: cfg.QR.Size}),
		Thumbnails: thumbnail.NewRenderer(thumbnail.RendererOptions{
			FontPath:  cfg.Thumbnail.FontPath,
			TitleSize: cfg.Thumbnail.TitleSize,
			TagSize:   cfg.Thumbnail.TagSize,
		}),
		Backgrounds: backgrounds,
		Store:       local,
	}), nil
}
