package kb

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cottand/kif/formula"
)

// EnvPrefix prefixes the environment variables that override preferences,
// e.g. KIF_HOLDSPREFIX=yes sets holdsPrefix
const EnvPrefix = "KIF_"

// File is the YAML representation of a knowledge base
type File struct {
	Name          string                  `yaml:"name"`
	Preferences   map[string]string       `yaml:"preferences"`
	Relations     map[string]RelationInfo `yaml:"relations"`
	VariableArity []string                `yaml:"variableArity"`
	// Facts are ground KIF formulas
	Facts []string `yaml:"facts"`
	// Documents are KIF files whose ground facts are added, relative to
	// the directory of the YAML file
	Documents []string `yaml:"documents"`
}

type RelationInfo struct {
	Valence  int            `yaml:"valence"`
	ArgTypes map[int]string `yaml:"argTypes"`
}

// Load reads the knowledge base described by the YAML file at path.
// Preferences may be overridden by environment variables, see EnvPrefix.
func Load(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading knowledge base")
	}
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	kb, err := FromFile(file, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	loadPreferencesFromEnv(kb, os.Environ())
	logger.Info("loaded knowledge base", "name", kb.Name, "path", path, "relations", len(kb.Relations()))
	return kb, nil
}

// FromFile builds a knowledge base from its YAML representation, reading
// documents relative to dir
func FromFile(file File, dir string) (*Static, error) {
	kb := New(file.Name)
	for k, v := range file.Preferences {
		kb.SetPreference(k, v)
	}
	for name, info := range file.Relations {
		if info.Valence != 0 {
			kb.SetValence(name, info.Valence)
		}
		for pos, typ := range info.ArgTypes {
			kb.SetArgType(name, pos, typ)
		}
	}
	kb.AddVariableArityRelation(file.VariableArity...)
	for _, fact := range file.Facts {
		if err := kb.AddFact(formula.Read(fact)); err != nil {
			return nil, err
		}
	}
	for _, doc := range file.Documents {
		path := doc
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, doc)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading document")
		}
		if _, err := kb.AddDocument(string(raw), path); err != nil {
			return nil, err
		}
	}
	return kb, nil
}

func loadPreferencesFromEnv(kb *Static, environ []string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		for pref := range kb.prefs {
			if strings.ToLower(pref) == name {
				name = pref
				break
			}
		}
		if name == strings.ToLower(formula.HoldsPrefixPreference) {
			name = formula.HoldsPrefixPreference
		}
		kb.SetPreference(name, value)
	}
}
