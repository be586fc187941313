package verify

import (
	"fmt"
	"strings"

	"github.com/meegsim/labcheck/pkg/check"
	"github.com/meegsim/labcheck/pkg/datadir"
	"github.com/meegsim/labcheck/pkg/dataset"
	"github.com/meegsim/labcheck/pkg/depcheck"
	"github.com/meegsim/labcheck/pkg/workshopfile"
)

// FromFile builds the ordered checker list for a workshop definition.
func FromFile(wf *workshopfile.File) ([]check.Checker, error) {
	var minFree uint64
	if wf.MinFree != "" {
		var err error
		minFree, err = datadir.ParseSize(wf.MinFree)
		if err != nil {
			return nil, fmt.Errorf("invalid min_free: %w", err)
		}
	}

	checks := []check.Checker{
		&datadir.Check{
			Path:    wf.DataDir,
			Create:  true,
			MinFree: minFree,
			FS:      &datadir.RealFileSystem{},
		},
	}

	for _, d := range wf.Dependencies {
		checks = append(checks, &depcheck.Check{
			Name:        d.Name,
			VersionArgs: strings.Fields(d.VersionCmd),
			Constraint:  d.Constraint,
			Match:       d.Match,
			Runner:      &depcheck.RealRunner{},
		})
	}

	if wf.Dataset != nil {
		dc, err := DatasetCheck(wf)
		if err != nil {
			return nil, err
		}
		checks = append(checks, dc)
	}

	return checks, nil
}

// DatasetCheck builds just the dataset checker for a workshop definition.
// Used by FromFile and by the standalone fetch command.
func DatasetCheck(wf *workshopfile.File) (*dataset.Check, error) {
	if wf.Dataset == nil {
		return nil, fmt.Errorf("workshop file has no dataset section")
	}

	dir, err := datadir.ExpandHome(wf.DataDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve data_dir: %w", err)
	}

	dc := &dataset.Check{
		Dir:         dir,
		ManifestURL: wf.Dataset.ManifestURL,
	}

	if dc.ManifestURL == "" {
		manifest := &dataset.Manifest{}
		for _, f := range wf.Dataset.Files {
			manifest.Files = append(manifest.Files, dataset.File{
				Path:   f.Path,
				URL:    f.URL,
				Size:   f.Size,
				SHA256: strings.ToLower(f.SHA256),
				BLAKE3: strings.ToLower(f.BLAKE3),
			})
		}
		dc.Manifest = manifest
	}

	return dc, nil
}
