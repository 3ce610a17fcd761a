// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package homedir

import (
	"os"
	"runtime"
)

// HomeDir returns the home directory for the current user.
func HomeDir() string {
	if runtime.GOOS == "windows" {
		if home := os.Getenv("USERPROFILE"); home != "" {
			return home
		}
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}

	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()

	return home
}
