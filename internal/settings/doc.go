// Package settings implements the on-disk settings files for confstack.
//
// Each File represents one hierarchical configuration document, loaded from
// disk or synthesized empty when the file doesn't exist yet. Files discovered
// from different directories are wired into an override chain, and the
// sections of the whole chain fold into a single aggregate with
// closer-file-wins precedence.
//
// # Architecture
//
// Files are linked most-authoritative-first; each file's Next points toward
// the more authoritative neighbor:
//
//	./confstack.toml            ← most authoritative (index 0)
//	     ▲ Next
//	../confstack.toml
//	     ▲ Next
//	~/.config/confstack/…       ← least authoritative (merge starts here)
//
// MergeSectionsInto walks from the least authoritative file toward the most
// authoritative one, so when two files define the same item in the same
// section, the closer file's value replaces the other whole. The aggregate is
// deep-cloned and never aliases any file's own tree.
//
// # Concurrency
//
// All disk access runs under an exclusive lock keyed by the absolute file
// path (see the filelock package), which serializes every process and thread
// using the same convention. In-memory mutation of a single File is not
// separately synchronized; callers that share a File across goroutines must
// coordinate themselves.
//
// # Sub-packages
//
//   - document: the section/item tree and its TOML persistence
//   - filelock: the path-keyed exclusive lock capability
//
// # Basic Usage
//
//	f, err := settings.Open(dir, "confstack.toml")
//	if err != nil {
//	    return err
//	}
//	if err := f.AddOrUpdate("packageSources", document.NewItem("nuget.org", attrs)); err != nil {
//	    return err
//	}
//	if err := f.Save(); err != nil {
//	    return err
//	}
//
// Merging a discovered chain:
//
//	settings.Link(files) // files[0] is the most authoritative
//	merged := make(map[string]*document.Section)
//	files[len(files)-1].MergeSectionsInto(merged)
package settings
