// Package fileutils holds afero helpers shared by the extractor and the command.
package fileutils

import (
	"github.com/spf13/afero"
)

func FileExists(path string, filesystem ...afero.Fs) bool {
	exists, err := afero.Exists(InitFilesystem(filesystem...), path)
	return err == nil && exists
}

func IsDir(path string, filesystem ...afero.Fs) bool {
	isDir, err := afero.IsDir(InitFilesystem(filesystem...), path)
	return err == nil && isDir
}

// InitFilesystem returns the first non-nil filesystem given, or the OS filesystem.
func InitFilesystem(filesystem ...afero.Fs) afero.Fs {
	for _, candidate := range filesystem {
		if candidate != nil {
			return candidate
		}
	}

	return afero.NewOsFs()
}
