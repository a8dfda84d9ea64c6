package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the embedded message files when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
	LanguagePt = "pt"
)

var matcher = newMatcher([]string{LanguageEn, LanguageFr, LanguagePt})

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if len(cfg.SupportedLanguages) > 0 {
		matcher = newMatcher(cfg.SupportedLanguages)
	}

	if cfg.TranslationFolder == "" {
		loadFS(embedded, "translation")
		return
	}

	if _, err := os.Stat(cfg.TranslationFolder); err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}
	loadFS(os.DirFS(cfg.TranslationFolder), ".")
}

func loadFS(fsys fs.FS, dir string) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", dir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := Translator.LoadMessageFileFS(fsys, path.Join(dir, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}

// Match picks the supported language closest to an Accept-Language header.
// It falls back to English.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	_, index, confidence := matcher.languages.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	return matcher.codes[index]
}

type languageMatcher struct {
	languages language.Matcher
	codes     []string
}

func newMatcher(codes []string) languageMatcher {
	tags := make([]language.Tag, 0, len(codes))
	kept := make([]string, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("language", code), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, code)
	}
	if len(tags) == 0 {
		tags, kept = []language.Tag{language.English}, []string{LanguageEn}
	}
	return languageMatcher{languages: language.NewMatcher(tags), codes: kept}
}
