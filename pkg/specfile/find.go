// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"os"
	"path/filepath"
)

// BaseName is the file name, without extension, that Find looks for.
const BaseName = "argz"

// FileNames returns the names Find looks for in each directory, in order.
func FileNames() []string {
	names := make([]string, 0, len(Formats)+1)
	for _, f := range Formats {
		names = append(names, BaseName+f.Ext())
		if f == YAML {
			names = append(names, BaseName+".yml")
		}
	}
	return names
}

// Find walks from startDir up to the filesystem root and returns the path
// of the first definition file found. It returns os.ErrNotExist if there is
// none.
func Find(startDir string) (string, error) {
	names := FileNames()
	dir := filepath.Clean(startDir)
	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if st, err := os.Stat(path); err == nil {
				if !st.IsDir() {
					return path, nil
				}
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
