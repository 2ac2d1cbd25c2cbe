// Package seed populates a fresh storage with the default settings, the
// administrator account and the sample articles. Every step is idempotent,
// so Run is safe to call on each startup.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
	"cahaya-digital/pkg/security/password"
)

//go:embed seeds/articles.yaml
var articlesYAML []byte

// Admin account defaults.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminFullName = "Administrator"
	DefaultAdminEmail    = "admin@cahayadigital25.com"
)

// Config controls the admin seed. AdminPassword is never defaulted: without
// it the admin account is not created.
type Config struct {
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@cahayadigital25.com"`
	SkipArticles  bool   `env:"SEED_SKIP_ARTICLES" envDefault:"false"`
}

// Report describes what Run created.
type Report struct {
	SettingsID      int64
	AdminCreated    bool
	AdminSkipped    bool // no admin exists and ADMIN_PASSWORD is unset
	ArticlesCreated int
}

type articleSeed struct {
	Title         string  `yaml:"title"`
	Content       string  `yaml:"content"`
	Summary       string  `yaml:"summary"`
	Category      string  `yaml:"category"`
	ImageURL      string  `yaml:"imageUrl"`
	Author        string  `yaml:"author"`
	AuthorImage   *string `yaml:"authorImage"`
	IsFeatured    bool    `yaml:"isFeatured"`
	IsBreaking    bool    `yaml:"isBreaking"`
	IsEditorsPick bool    `yaml:"isEditorsPick"`
}

// SampleArticles parses the embedded sample articles.
func SampleArticles() ([]entity.ArticleInput, error) {
	var seeds []articleSeed
	if err := yaml.Unmarshal(articlesYAML, &seeds); err != nil {
		return nil, fmt.Errorf("parse articles.yaml: %w", err)
	}
	inputs := make([]entity.ArticleInput, 0, len(seeds))
	for i, s := range seeds {
		category, err := entity.ParseCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("articles.yaml entry %d: %w", i, err)
		}
		inputs = append(inputs, entity.ArticleInput{
			Title:         s.Title,
			Content:       s.Content,
			Summary:       s.Summary,
			Category:      category,
			ImageURL:      s.ImageURL,
			Author:        s.Author,
			AuthorImage:   s.AuthorImage,
			IsFeatured:    s.IsFeatured,
			IsBreaking:    s.IsBreaking,
			IsEditorsPick: s.IsEditorsPick,
		})
	}
	return inputs, nil
}

// Run seeds storage. It never overwrites existing data.
func Run(ctx context.Context, storage repository.Storage, cfg Config, hasher *password.Hasher, logger *slog.Logger) (Report, error) {
	var report Report

	settings, err := storage.Settings().Get(ctx)
	if err != nil {
		return report, fmt.Errorf("seed settings: %w", err)
	}
	report.SettingsID = settings.ID

	report.AdminCreated, report.AdminSkipped, err = seedAdmin(ctx, storage.Users(), cfg, hasher, logger)
	if err != nil {
		return report, err
	}

	if !cfg.SkipArticles {
		n, err := seedArticles(ctx, storage.Articles())
		if err != nil {
			return report, err
		}
		report.ArticlesCreated = n
	}

	logger.Info("seed completed",
		slog.Int64("settings_id", report.SettingsID),
		slog.Bool("admin_created", report.AdminCreated),
		slog.Int("articles_created", report.ArticlesCreated))
	return report, nil
}

func seedAdmin(ctx context.Context, users repository.UserRepository, cfg Config, hasher *password.Hasher, logger *slog.Logger) (created, skipped bool, err error) {
	username := cfg.AdminUsername
	if username == "" {
		username = DefaultAdminUsername
	}
	_, err = users.GetByUsername(ctx, username)
	if err == nil {
		return false, false, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return false, false, fmt.Errorf("seed admin: %w", err)
	}
	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set; skipping admin account seed",
			slog.String("username", username))
		return false, true, nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return false, false, fmt.Errorf("seed admin: %w", err)
	}
	email := cfg.AdminEmail
	if email == "" {
		email = DefaultAdminEmail
	}
	fullName := DefaultAdminFullName
	_, err = users.Create(ctx, entity.UserInput{
		Username:     username,
		PasswordHash: hash,
		FullName:     &fullName,
		Email:        &email,
		Role:         entity.RoleAdmin,
	})
	// Another instance may have seeded concurrently.
	if errors.Is(err, entity.ErrConflict) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("admin account created", slog.String("username", username))
	return true, false, nil
}

func seedArticles(ctx context.Context, articles repository.ArticleRepository) (int, error) {
	count, err := articles.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed articles: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	inputs, err := SampleArticles()
	if err != nil {
		return 0, fmt.Errorf("seed articles: %w", err)
	}
	for i, in := range inputs {
		if _, err := articles.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seed articles: %q: %w", in.Title, err)
		}
	}
	return len(inputs), nil
}
