package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/robsonj/confstack/internal/settings"
	"github.com/robsonj/confstack/internal/settings/document"
)

// configFileName is the settings file confctl looks for in each directory.
const configFileName = "confstack.toml"

// machineWideDir holds the machine-wide settings file. It is opened
// read-only and sits at the bottom of the override chain.
var machineWideDir = filepath.FromSlash("/etc/confstack")

// configDir is one directory contributing a settings file to the chain.
type configDir struct {
	dir         string
	machineWide bool
}

// discoverConfigDirs returns the directories that hold a settings file,
// most authoritative first: the start directory and each of its parents,
// then the user config directory, then the machine-wide directory.
func discoverConfigDirs(startDir string) ([]configDir, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	var dirs []configDir
	for dir := abs; ; {
		if hasConfigFile(dir) {
			dirs = append(dirs, configDir{dir: dir})
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if ucd, err := os.UserConfigDir(); err == nil {
		dir := filepath.Join(ucd, "confstack")
		if hasConfigFile(dir) {
			dirs = append(dirs, configDir{dir: dir})
		}
	}

	if hasConfigFile(machineWideDir) {
		dirs = append(dirs, configDir{dir: machineWideDir, machineWide: true})
	}

	return dirs, nil
}

// hasConfigFile reports whether dir contains a settings file.
func hasConfigFile(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, configFileName))
	return err == nil
}

// openChain opens every discovered settings file and links them into an
// override chain, most authoritative first.
func openChain(dirs []configDir) ([]*settings.File, error) {
	files := make([]*settings.File, 0, len(dirs))
	for _, d := range dirs {
		var opts []settings.Option
		if d.machineWide {
			opts = append(opts, settings.WithMachineWide())
		}
		f, err := settings.Open(d.dir, configFileName, opts...)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded settings file", "path", f.Path(), "machineWide", f.IsMachineWide())
		files = append(files, f)
	}
	settings.Link(files)
	return files, nil
}

// mergedSections folds the whole chain into a single aggregate,
// closer-file-wins per item.
func mergedSections(files []*settings.File) map[string]*document.Section {
	merged := make(map[string]*document.Section)
	if len(files) > 0 {
		files[len(files)-1].MergeSectionsInto(merged)
	}
	return merged
}

// sectionsValue renders a merged aggregate as plain maps for JSON output.
func sectionsValue(merged map[string]*document.Section) map[string]any {
	out := make(map[string]any, len(merged))
	for name, section := range merged {
		out[name] = sectionValue(section)
	}
	return out
}

// sectionValue renders one section as itemKey -> item values.
func sectionValue(section *document.Section) map[string]any {
	out := make(map[string]any, section.Len())
	for _, item := range section.Items() {
		out[item.Key] = itemValue(item)
	}
	return out
}

// itemValue renders an item's attributes, plus nested items under "item".
func itemValue(item *document.Item) map[string]any {
	out := make(map[string]any, len(item.Attributes)+1)
	for k, v := range item.Attributes {
		out[k] = v
	}
	if len(item.Children) > 0 {
		children := make(map[string]any, len(item.Children))
		for _, child := range item.Children {
			children[child.Key] = itemValue(child)
		}
		out["item"] = children
	}
	return out
}

// sortedNames returns the map's keys in sorted order for stable output.
func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
