package formconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds form definitions loaded from documents, in load order.
type Store struct {
	forms map[string]Definition
	order []string
}

// Definition is a Config plus the file it was read from.
type Definition struct {
	Config Config
	Source string
}

type documentFile struct {
	Forms []Config `json:"forms" yaml:"forms"`
}

// LoadFS walks fsys and parses every JSON/YAML file as a forms document:
//
//	forms:
//	  - name: ContactForm
//	    endpoint: /api/v1/contact
//	    formId: contact-form
//	    fields: [name, email, phone, message]
//
// Definitions are validated on load. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formconfig: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for idx, cfg := range doc.Forms {
			name := strings.TrimSpace(cfg.Name)
			if err := Validate(cfg); err != nil {
				return fmt.Errorf("formconfig: %s form #%d: %w", path, idx, err)
			}
			if _, exists := store.forms[name]; exists {
				return fmt.Errorf("formconfig: duplicate form %q (file %s)", name, path)
			}
			cfg.Name = name
			store.forms[name] = Definition{Config: cfg, Source: path}
			store.order = append(store.order, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the definition registered under name.
func (s *Store) Form(name string) (Config, bool) {
	if s == nil {
		return Config{}, false
	}
	def, ok := s.forms[name]
	if !ok {
		return Config{}, false
	}
	def.Config.Fields = append([]string(nil), def.Config.Fields...)
	return def.Config, true
}

// Source reports the file a form was loaded from.
func (s *Store) Source(name string) string {
	if s == nil {
		return ""
	}
	return s.forms[name].Source
}

// Names lists forms in load order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formconfig: file %s is empty", source)
	}
	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("formconfig: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("formconfig: parse %s: %w", source, err)
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
