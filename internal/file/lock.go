// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Lock holds an exclusive advisory lock on a file.
type Lock struct {
	f *os.File
}

// LockExclusive blocks until an exclusive flock is acquired on the named
// file.  The file must exist.
func LockExclusive(filename string) (*Lock, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	for {
		err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("flock %s: %w", filename, err)
	}

	return &Lock{f}, nil
}

// Unlock releases the lock.  It can be called multiple times.
func (l *Lock) Unlock() error {
	if l.f == nil {
		return nil
	}

	f := l.f
	l.f = nil

	if err := unix.Flock(int(f.Fd()), unix.LOCK_UN); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
