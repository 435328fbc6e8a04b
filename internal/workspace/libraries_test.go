// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"modlint/pkg/types"
)

// fakeResolver returns a canned manifest without touching the filesystem.
type fakeResolver struct {
	manifest *Manifest
	err      error
}

func (f fakeResolver) Manifest() (*Manifest, error) {
	return f.manifest, f.err
}

func sampleAdjustment() PrimaryAdjustment {
	return PrimaryAdjustment{
		Primary: "Sampleland",
		Drop:    []types.LibraryName{"Cache", "Bench"},
		Extra:   "Archive",
	}
}

func TestBuildLibraries_PrimaryProject(t *testing.T) {
	t.Parallel()

	r := fakeResolver{manifest: &Manifest{
		Name: "Sampleland",
		Libs: []Lib{{Name: "Sampleland"}, {Name: "Cache"}, {Name: "Bench"}},
	}}

	got, err := BuildLibraries(r, sampleAdjustment())
	if err != nil {
		t.Fatalf("BuildLibraries() unexpected error: %v", err)
	}

	// Tooling libraries gone, auxiliary appended.
	want := []types.LibraryName{"Sampleland", "Archive"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildLibraries() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLibraries_DownstreamProjectUntouched(t *testing.T) {
	t.Parallel()

	r := fakeResolver{manifest: &Manifest{
		Name: "Userland",
		Libs: []Lib{{Name: "Userland"}, {Name: "Cache"}},
	}}

	got, err := BuildLibraries(r, sampleAdjustment())
	if err != nil {
		t.Fatalf("BuildLibraries() unexpected error: %v", err)
	}

	want := []types.LibraryName{"Userland", "Cache"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildLibraries() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLibraries_AuxiliaryNotDuplicated(t *testing.T) {
	t.Parallel()

	r := fakeResolver{manifest: &Manifest{
		Name: "Sampleland",
		Libs: []Lib{{Name: "Sampleland"}, {Name: "Archive"}},
	}}

	got, err := BuildLibraries(r, sampleAdjustment())
	if err != nil {
		t.Fatalf("BuildLibraries() unexpected error: %v", err)
	}

	want := []types.LibraryName{"Sampleland", "Archive"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildLibraries() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLibraries_AuxiliaryAddedWhenAbsent(t *testing.T) {
	t.Parallel()

	// Even a manifest that never mentions the auxiliary library must end up
	// with it in the build list.
	r := fakeResolver{manifest: &Manifest{
		Name: "Sampleland",
		Libs: []Lib{{Name: "Sampleland"}},
	}}

	got, err := BuildLibraries(r, sampleAdjustment())
	if err != nil {
		t.Fatalf("BuildLibraries() unexpected error: %v", err)
	}
	if got[len(got)-1] != "Archive" {
		t.Errorf("BuildLibraries() = %v, want auxiliary appended last", got)
	}
}

func TestBuildLibraries_DisabledAdjustment(t *testing.T) {
	t.Parallel()

	r := fakeResolver{manifest: &Manifest{
		Name: "Sampleland",
		Libs: []Lib{{Name: "Sampleland"}, {Name: "Cache"}},
	}}

	got, err := BuildLibraries(r, PrimaryAdjustment{})
	if err != nil {
		t.Fatalf("BuildLibraries() unexpected error: %v", err)
	}

	want := []types.LibraryName{"Sampleland", "Cache"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildLibraries() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLibraries_ResolverFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("manifest unreadable")
	_, err := BuildLibraries(fakeResolver{err: boom}, sampleAdjustment())
	if !errors.Is(err, boom) {
		t.Errorf("BuildLibraries() error = %v, want resolver failure passed through", err)
	}
}
