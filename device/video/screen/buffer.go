// Package screen manages the framebuffers and display frameworks that make up
// the video output path. It owns the framebuffer descriptor handed over by
// the bootloader, and the registry through which UI frameworks (such as the
// text console) are installed and switched.
package screen

import (
	"github.com/Vitus213/DragonOS/kernel"
	"github.com/Vitus213/DragonOS/kernel/sync"
)

var (
	// ErrUnsupportedDepth is returned when a framebuffer is declared with a
	// bit depth other than 16, 24 or 32. This is a fatal configuration error.
	ErrUnsupportedDepth = &kernel.Error{Module: "screen", Message: "unsupported framebuffer bit depth"}

	// ErrBufferTooSmall is returned when a direct framebuffer region is too
	// small for the declared dimensions.
	ErrBufferTooSmall = &kernel.Error{Module: "screen", Message: "framebuffer region smaller than declared dimensions"}
)

// BufferKind describes the type of memory backing a framebuffer.
type BufferKind uint8

const (
	// BufferKindDirect marks a framebuffer mapped directly over device
	// memory. Writes become visible without any extra synchronization.
	BufferKindDirect BufferKind = iota

	// BufferKindSoftware marks an in-memory framebuffer that is flushed to
	// the device by an independent refresh task and must therefore be
	// locked while it is written.
	BufferKindSoftware
)

// SoftwareBuffer is a lock-guarded in-memory framebuffer. The display refresh
// task acquires the same lock while flushing the buffer contents to the
// device, so writers hold it for as short a time as possible.
type SoftwareBuffer struct {
	lock sync.Spinlock
	data []byte
}

// Acquire locks the buffer and returns its backing bytes. The caller must
// call Release once it is done writing.
func (b *SoftwareBuffer) Acquire() []byte {
	b.lock.Acquire()
	return b.data
}

// Release unlocks the buffer.
func (b *SoftwareBuffer) Release() {
	b.lock.Release()
}

// BufferInfo describes a framebuffer: its pixel dimensions, bit depth and the
// memory backing it (either a direct device region or a software buffer).
type BufferInfo struct {
	width    uint32
	height   uint32
	bitDepth uint32

	direct []byte
	soft   *SoftwareBuffer
}

// NewDirectBuffer describes a framebuffer mapped over the supplied device
// memory region. The region must be large enough to hold width*height pixels
// at the requested depth and the depth must be one of 16, 24 or 32 bits.
func NewDirectBuffer(width, height, bitDepth uint32, region []byte) (BufferInfo, *kernel.Error) {
	if err := checkDepth(bitDepth); err != nil {
		return BufferInfo{}, err
	}

	if uint32(len(region)) < width*height*(bitDepth>>3) {
		return BufferInfo{}, ErrBufferTooSmall
	}

	return BufferInfo{width: width, height: height, bitDepth: bitDepth, direct: region}, nil
}

// NewSoftwareBuffer allocates a lock-guarded in-memory framebuffer with the
// requested dimensions. The depth must be one of 16, 24 or 32 bits.
func NewSoftwareBuffer(width, height, bitDepth uint32) (BufferInfo, *kernel.Error) {
	if err := checkDepth(bitDepth); err != nil {
		return BufferInfo{}, err
	}

	soft := &SoftwareBuffer{data: make([]byte, width*height*(bitDepth>>3))}
	return BufferInfo{width: width, height: height, bitDepth: bitDepth, soft: soft}, nil
}

// Width returns the framebuffer width in pixels.
func (b *BufferInfo) Width() uint32 { return b.width }

// Height returns the framebuffer height in pixels.
func (b *BufferInfo) Height() uint32 { return b.height }

// BitDepth returns the framebuffer color depth in bits per pixel.
func (b *BufferInfo) BitDepth() uint32 { return b.bitDepth }

// BytesPerPixel returns the number of bytes occupied by one pixel.
func (b *BufferInfo) BytesPerPixel() uint32 { return b.bitDepth >> 3 }

// Size returns the framebuffer size in bytes.
func (b *BufferInfo) Size() uint32 { return b.width * b.height * b.BytesPerPixel() }

// Kind returns the kind of memory backing this framebuffer.
func (b *BufferInfo) Kind() BufferKind {
	if b.soft != nil {
		return BufferKindSoftware
	}
	return BufferKindDirect
}

// Acquire returns a writable byte view of the framebuffer together with a
// release function that must be called once writing completes. For direct
// buffers the release function is a no-op; for software buffers it unlocks
// the buffer.
func (b *BufferInfo) Acquire() ([]byte, func()) {
	if b.soft != nil {
		return b.soft.Acquire(), b.soft.Release
	}
	return b.direct, func() {}
}

// CopyOverlapFrom copies the pixel rows shared by both framebuffers from old
// into b. The copy is best-effort: nothing is copied when the two buffers
// disagree on bit depth, and rows/columns outside the common region are left
// untouched.
func (b *BufferInfo) CopyOverlapFrom(old BufferInfo) {
	if b.bitDepth != old.bitDepth {
		return
	}

	rows := b.height
	if old.height < rows {
		rows = old.height
	}

	rowBytes := b.width * b.BytesPerPixel()
	if oldRowBytes := old.width * old.BytesPerPixel(); oldRowBytes < rowBytes {
		rowBytes = oldRowBytes
	}

	dst, releaseDst := b.Acquire()
	defer releaseDst()
	src, releaseSrc := old.Acquire()
	defer releaseSrc()

	dstStride := b.width * b.BytesPerPixel()
	srcStride := old.width * old.BytesPerPixel()
	for row := uint32(0); row < rows; row++ {
		copy(dst[row*dstStride:row*dstStride+rowBytes], src[row*srcStride:row*srcStride+rowBytes])
	}
}

func checkDepth(bitDepth uint32) *kernel.Error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	default:
		return ErrUnsupportedDepth
	}
}
