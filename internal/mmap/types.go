package mmap

import "errors"

// AccessPattern is a hint to the kernel about how mapped memory is touched.
type AccessPattern int

const (
	// AccessDefault gives no specific advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects front-to-back scans.
	AccessSequential
	// AccessRandom expects scattered single-block access.
	AccessRandom
	// AccessWillNeed asks the kernel to fault pages in ahead of use.
	AccessWillNeed
	// AccessDontNeed lets the kernel drop the pages.
	AccessDontNeed
)

func (p AccessPattern) String() string {
	switch p {
	case AccessSequential:
		return "sequential"
	case AccessRandom:
		return "random"
	case AccessWillNeed:
		return "willneed"
	case AccessDontNeed:
		return "dontneed"
	default:
		return "default"
	}
}

var (
	// ErrClosed is returned when a closed mapping is used.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for non-positive mapping sizes.
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
)
