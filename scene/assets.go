package scene

import (
	"io"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

// NewAssetFS overlays the given directories into one read-only file system.
func NewAssetFS(roots ...string) (*ofs.Overlay, error) {
	if len(roots) == 0 {
		return nil, errors.New("no asset roots")
	}
	var ovl ofs.Overlay
	if err := ovl.Add(false, roots...); err != nil {
		return nil, errors.Wrap(err, "asset roots")
	}
	return &ovl, nil
}

// ReadAsset returns the whole content of name.
func ReadAsset(fsys ofs.FileSystem, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}
