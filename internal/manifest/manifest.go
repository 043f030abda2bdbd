// Package manifest applies scoped edits to a package.json document.
// Only the scripts, dependencies and devDependencies mappings are ever touched;
// every other key keeps its value and position.
package manifest

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the manifest file name inside a project root.
const FileName = "package.json"

// Section is one of the mappings a patch may edit.
type Section string

const (
	Scripts         Section = "scripts"
	Dependencies    Section = "dependencies"
	DevDependencies Section = "devDependencies"
)

// IsValid reports whether s is a patchable section.
func (s Section) IsValid() bool {
	switch s {
	case Scripts, Dependencies, DevDependencies:
		return true
	default:
		return false
	}
}

// Entry is a single key/value pair of a section.
type Entry struct {
	Key   string
	Value string
}

// OpKind distinguishes patch operations.
type OpKind int

const (
	OpReplaceSection OpKind = iota
	OpSet
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpReplaceSection:
		return "replace"
	case OpSet:
		return "set"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is one scoped mutation.
type Op struct {
	Kind    OpKind
	Section Section
	Entries []Entry
	Keys    []string
}

// ReplaceSection makes section contain exactly entries, in order.
func ReplaceSection(section Section, entries ...Entry) Op {
	return Op{Kind: OpReplaceSection, Section: section, Entries: entries}
}

// Set adds or overwrites entries, keeping all other keys of section.
func Set(section Section, entries ...Entry) Op {
	return Op{Kind: OpSet, Section: section, Entries: entries}
}

// Delete removes keys from section. Missing keys or a missing section are not an error.
func Delete(section Section, keys ...string) Op {
	return Op{Kind: OpDelete, Section: section, Keys: keys}
}

func (o Op) String() string {
	var keys []string
	if o.Kind == OpDelete {
		keys = o.Keys
	} else {
		for _, e := range o.Entries {
			keys = append(keys, e.Key)
		}
	}
	return fmt.Sprintf("%s %s [%s]", o.Kind, o.Section, strings.Join(keys, ", "))
}

// Patch is an ordered list of operations.
type Patch []Op

// Apply runs every operation against data and returns the re-indented document.
func (p Patch) Apply(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid %s: not valid JSON", FileName)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("invalid %s: top level value is not an object", FileName)
	}

	var err error
	for _, op := range p {
		if !op.Section.IsValid() {
			return nil, fmt.Errorf("refusing to patch section %q", op.Section)
		}

		switch op.Kind {
		case OpReplaceSection:
			data, err = sjson.SetRawBytes(data, string(op.Section), []byte("{}"))
			if err != nil {
				return nil, fmt.Errorf("failed to reset %s: %w", op.Section, err)
			}
			data, err = setEntries(data, op.Section, op.Entries)
		case OpSet:
			data, err = setEntries(data, op.Section, op.Entries)
		case OpDelete:
			data, err = deleteKeys(data, op.Section, op.Keys)
		default:
			return nil, fmt.Errorf("unknown patch operation: %d", op.Kind)
		}
		if err != nil {
			return nil, err
		}
	}

	return pretty.PrettyOptions(data, &pretty.Options{Indent: "  "}), nil
}

func (p Patch) String() string {
	parts := make([]string, len(p))
	for i, op := range p {
		parts[i] = op.String()
	}
	return strings.Join(parts, "; ")
}

func setEntries(data []byte, section Section, entries []Entry) ([]byte, error) {
	var err error
	for _, e := range entries {
		data, err = sjson.SetBytes(data, keyPath(section, e.Key), e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to set %s.%s: %w", section, e.Key, err)
		}
	}
	return data, nil
}

func deleteKeys(data []byte, section Section, keys []string) ([]byte, error) {
	var err error
	for _, key := range keys {
		path := keyPath(section, key)
		if !gjson.GetBytes(data, path).Exists() {
			continue
		}
		data, err = sjson.DeleteBytes(data, path)
		if err != nil {
			return nil, fmt.Errorf("failed to delete %s.%s: %w", section, key, err)
		}
	}
	return data, nil
}

// Read returns the entries of section in document order.
func Read(data []byte, section Section) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid %s: not valid JSON", FileName)
	}

	var entries []Entry
	gjson.GetBytes(data, string(section)).ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, Entry{Key: key.String(), Value: value.String()})
		return true
	})
	return entries, nil
}

// Has reports whether section contains key.
func Has(data []byte, section Section, key string) bool {
	return gjson.GetBytes(data, keyPath(section, key)).Exists()
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"@", `\@`,
	"#", `\#`,
	"|", `\|`,
)

// keyPath builds a gjson/sjson path for a literal key such as "@types/node".
func keyPath(section Section, key string) string {
	return string(section) + "." + pathEscaper.Replace(key)
}
