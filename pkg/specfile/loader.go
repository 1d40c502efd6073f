// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"fmt"
	"os"

	"github.com/yeetrun/argz/pkg/argz"
	"go.uber.org/zap"
)

// Loader reads program definitions from disk.
type Loader struct {
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

func (l *Loader) logger() *zap.Logger {
	if l == nil || l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// ReadFile reads and decodes the definition at path.
func (l *Loader) ReadFile(path string) (*File, Format, error) {
	log := l.logger().With(zap.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Unknown, err
	}
	format, err := DetectFormat(path, data)
	if err != nil {
		return nil, Unknown, err
	}
	log.Debug("decoding spec file", zap.String("format", string(format)), zap.Int("bytes", len(data)))
	f, err := Decode(data, format, path)
	if err != nil {
		return nil, format, err
	}
	log.Debug("decoded spec file",
		zap.String("name", f.Name),
		zap.Int("commands", len(f.Commands)),
		zap.Int("options", len(f.Options)))
	return f, format, nil
}

// Load reads the definition at path and builds its Program.
func (l *Loader) Load(path string) (*argz.Program, error) {
	f, _, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := f.Program()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Find is the package-level Find with logging.
func (l *Loader) Find(startDir string) (string, error) {
	path, err := Find(startDir)
	if err != nil {
		l.logger().Debug("no spec file found", zap.String("start", startDir))
		return "", err
	}
	l.logger().Debug("found spec file", zap.String("path", path))
	return path, nil
}
