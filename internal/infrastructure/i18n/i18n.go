package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Locales contém os catálogos de mensagens embutidos no binário
//
//go:embed locales/*.json
var Locales embed.FS

// Service gerencia traduções e internacionalização.
// Implementa ports.MessageResolver.
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	tags            []language.Tag               // idioma padrão primeiro
	matcher         language.Matcher
	defaultLanguage string
}

// NewService cria um novo serviço de i18n
// localesDir: diretório contendo os arquivos JSON de tradução
// defaultLang: idioma padrão (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewServiceFS cria o serviço a partir de um fs.FS (ex.: Locales)
func NewServiceFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	defaultTag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %s: %w", defaultLang, err)
	}

	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultTag.String(),
	}

	// Carregar todos os arquivos .json do diretório de locales
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	var others []language.Tag
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".json")

		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %s: %w", file, err)
		}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[tag.String()] = translations
		if tag != defaultTag {
			others = append(others, tag)
		}
	}

	// Verificar se o idioma padrão existe
	if _, ok := s.translations[s.defaultLanguage]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	s.tags = append([]language.Tag{defaultTag}, others...)
	s.matcher = language.NewMatcher(s.tags)

	return s, nil
}

// Resolve traduz key para o locale informado.
// args são expostos ao template da mensagem como lista: {{index . 0}}.
// Ordem de busca: melhor idioma suportado para locale, idioma padrão, fallback.
func (s *Service) Resolve(key string, args []any, fallback string, locale language.Tag) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.lookup(locale, key)
	if message == "" {
		return fallback
	}

	if len(args) == 0 {
		return message
	}

	return render(message, args)
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Name}}, {{.Email}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}

	message := s.lookup(tag, key)

	// Se ainda não encontrou, retornar a chave
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	return render(message, params[0])
}

// Match retorna o idioma suportado que melhor atende às preferências.
// Retorna false quando nenhum idioma suportado é compatível.
func (s *Service) Match(preferred ...language.Tag) (language.Tag, bool) {
	if len(preferred) == 0 {
		return language.Und, false
	}

	_, idx, conf := s.matcher.Match(preferred...)
	if conf == language.No {
		return language.Und, false
	}
	return s.tags[idx], true
}

// lookup busca no melhor idioma para locale e depois no idioma padrão (sem lock)
func (s *Service) lookup(locale language.Tag, key string) string {
	if locale != language.Und {
		if msg := s.getTranslation(locale.String(), key); msg != "" {
			return msg
		}
		if best, ok := s.Match(locale); ok {
			if msg := s.getTranslation(best.String(), key); msg != "" {
				return msg
			}
		}
	}
	return s.getTranslation(s.defaultLanguage, key)
}

// getTranslation busca uma tradução sem lock (uso interno)
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// render interpola data na mensagem; em caso de erro retorna a mensagem crua
func render(message string, data any) string {
	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return message
	}

	return buf.String()
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// DefaultTag retorna o idioma padrão como language.Tag
func (s *Service) DefaultTag() language.Tag {
	return s.tags[0]
}

// GetSupportedLanguages retorna lista de idiomas suportados, padrão primeiro
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.tags))
	for _, tag := range s.tags {
		langs = append(langs, tag.String())
	}
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}

	_, ok := s.translations[tag.String()]
	return ok
}
