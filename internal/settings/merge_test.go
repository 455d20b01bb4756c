package settings

import (
	"testing"

	"github.com/robsonj/confstack/internal/settings/document"
)

// chainOf opens n files, seeds each via the seed callback, and links them
// most authoritative first.
func chainOf(t *testing.T, n int, seed func(i int, f *File)) []*File {
	t.Helper()
	files := make([]*File, n)
	for i := range files {
		files[i] = mustOpen(t)
		seed(i, files[i])
	}
	Link(files)
	return files
}

func TestMergeSectionsInto_ChainPrecedence(t *testing.T) {
	// A (most authoritative) → B → C, all defining "packageSources" with an
	// overlapping "shared" item plus one unique item each.
	files := chainOf(t, 3, func(i int, f *File) {
		unique := []string{"fromA", "fromB", "fromC"}[i]
		value := []string{"a", "b", "c"}[i]
		if err := f.AddOrUpdate("packageSources", document.NewItem("shared", map[string]string{"value": value})); err != nil {
			t.Fatal(err)
		}
		if err := f.AddOrUpdate("packageSources", document.NewItem(unique, nil)); err != nil {
			t.Fatal(err)
		}
	})

	merged := make(map[string]*document.Section)
	files[2].MergeSectionsInto(merged)

	section, ok := merged["packageSources"]
	if !ok {
		t.Fatal("merged aggregate missing packageSources")
	}
	if section.Len() != 4 {
		t.Errorf("merged section Len() = %d, want 4 (union of all items)", section.Len())
	}

	shared, ok := section.Item("shared")
	if !ok {
		t.Fatal("merged section missing the overlapping item")
	}
	if got := shared.Attributes["value"]; got != "a" {
		t.Errorf("overlapping item value = %q, want %q (most authoritative wins)", got, "a")
	}

	for _, key := range []string{"fromA", "fromB", "fromC"} {
		if _, ok := section.Item(key); !ok {
			t.Errorf("merged section missing non-overlapping item %q", key)
		}
	}
}

func TestMergeSectionsInto_SectionOnOneSideOnly(t *testing.T) {
	files := chainOf(t, 2, func(i int, f *File) {
		name := []string{"onlyInA", "onlyInB"}[i]
		if err := f.AddOrUpdate(name, document.NewItem("k", map[string]string{"value": "v"})); err != nil {
			t.Fatal(err)
		}
	})

	merged := make(map[string]*document.Section)
	files[1].MergeSectionsInto(merged)

	for _, name := range []string{"onlyInA", "onlyInB"} {
		section, ok := merged[name]
		if !ok {
			t.Fatalf("merged aggregate missing section %q", name)
		}
		if section.Len() != 1 {
			t.Errorf("section %q Len() = %d, want 1", name, section.Len())
		}
	}
}

func TestMergeSectionsInto_SingleFile(t *testing.T) {
	f := mustOpen(t)
	if err := f.AddOrUpdate("config", document.NewItem("k", map[string]string{"value": "v"})); err != nil {
		t.Fatal(err)
	}

	merged := make(map[string]*document.Section)
	f.MergeSectionsInto(merged)

	if len(merged) != 1 {
		t.Fatalf("merged aggregate has %d sections, want 1", len(merged))
	}
}

func TestMergeSectionsInto_AggregateIndependent(t *testing.T) {
	f := mustOpen(t)
	if err := f.AddOrUpdate("config", document.NewItem("k", map[string]string{"value": "original"})); err != nil {
		t.Fatal(err)
	}

	merged := make(map[string]*document.Section)
	f.MergeSectionsInto(merged)

	// Mutating the aggregate must not reach the source file.
	merged["config"].Upsert(document.NewItem("k", map[string]string{"value": "mutated"}))
	merged["config"].Upsert(document.NewItem("extra", nil))

	section, err := f.Section("config")
	if err != nil {
		t.Fatal(err)
	}
	if section.Len() != 1 {
		t.Errorf("source section Len() = %d, want 1", section.Len())
	}
	item, _ := section.Item("k")
	if item.Attributes["value"] != "original" {
		t.Error("mutating the aggregate changed the source tree")
	}
}

func TestMergeSectionsInto_NoSideEffects(t *testing.T) {
	files := chainOf(t, 2, func(i int, f *File) {
		if err := f.AddOrUpdate("config", document.NewItem("k", map[string]string{"value": "v"})); err != nil {
			t.Fatal(err)
		}
		if err := f.Save(); err != nil {
			t.Fatal(err)
		}
	})

	merged := make(map[string]*document.Section)
	files[1].MergeSectionsInto(merged)

	for i, f := range files {
		if f.IsDirty() {
			t.Errorf("files[%d] became dirty from merging", i)
		}
		section, err := f.Section("config")
		if err != nil {
			t.Fatalf("files[%d].Section(): %v", i, err)
		}
		if section.Len() != 1 {
			t.Errorf("files[%d] section Len() = %d, want 1", i, section.Len())
		}
	}
}

func TestMergeSectionsInto_EmptyChain(t *testing.T) {
	f := mustOpen(t)

	merged := make(map[string]*document.Section)
	f.MergeSectionsInto(merged)

	if len(merged) != 0 {
		t.Errorf("merged aggregate has %d sections, want 0", len(merged))
	}
}
