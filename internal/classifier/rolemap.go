package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RoleMap holds precomputed title -> category answers. Keys are exact,
// case-sensitive titles.
type RoleMap map[string]string

// Valid returns the entries whose category belongs to taxonomy. Other
// means "no answer" and is dropped too.
func (m RoleMap) Valid(taxonomy Taxonomy) RoleMap {
	out := make(RoleMap, len(m))
	for title, cat := range m {
		if cat == Other || !taxonomy.Has(cat) {
			continue
		}
		out[title] = cat
	}
	return out
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadRoleMap reads a JSON or YAML (by extension) object of title to
// category. A missing file returns an error wrapping os.ErrNotExist.
func LoadRoleMap(path string) (RoleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role map: %w", err)
	}

	m := RoleMap{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, &m)
	} else {
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decode role map %s: %w", path, err)
	}
	return m, nil
}

// SaveRoleMap writes m to path in the format implied by its extension.
// The file is replaced through a rename so readers never see a partial map.
func SaveRoleMap(path string, m RoleMap) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(m)
	} else {
		data, err = json.MarshalIndent(m, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode role map: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write role map: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace role map: %w", err)
	}
	return nil
}
