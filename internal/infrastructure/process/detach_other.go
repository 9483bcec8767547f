//go:build !linux && !darwin

package process

import "syscall"

func detachAttr() *syscall.SysProcAttr {
	return nil
}
