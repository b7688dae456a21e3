package screen

import (
	"github.com/Vitus213/DragonOS/kernel"
	"github.com/Vitus213/DragonOS/kernel/kfmt"
	"github.com/Vitus213/DragonOS/kernel/sync"
)

var (
	// ErrInvalidFramework is returned when a nil or unnamed framework is
	// passed to Register.
	ErrInvalidFramework = &kernel.Error{Module: "screen", Message: "invalid ui framework"}

	// ErrFrameworkRegistered is returned when a framework with the same
	// name has already been registered.
	ErrFrameworkRegistered = &kernel.Error{Module: "screen", Message: "ui framework already registered"}

	// ErrNoFramework is returned by operations that require an active ui
	// framework when none has been registered yet.
	ErrNoFramework = &kernel.Error{Module: "screen", Message: "no active ui framework"}

	// ErrNoDeviceBuffer is returned when the boot framebuffer is queried
	// before the bootloader handoff has been recorded.
	ErrNoDeviceBuffer = &kernel.Error{Module: "screen", Message: "boot framebuffer not configured"}
)

// FrameworkType describes the class of a registered UI framework.
type FrameworkType uint8

const (
	// FrameworkTypeText marks a framework that renders text.
	FrameworkTypeText FrameworkType = iota

	// FrameworkTypeGUI marks a framework that renders arbitrary graphics.
	FrameworkTypeGUI
)

// Metadata describes a registered UI framework and the framebuffer it renders
// into.
type Metadata struct {
	Name   string
	Type   FrameworkType
	Buffer BufferInfo
}

// Framework is implemented by UI frameworks (e.g. the text console) that can
// take over the display. The screen manager invokes the callbacks as the
// framework is installed, switched or handed a new framebuffer.
type Framework interface {
	// Name returns the framework name used for registration.
	Name() string

	// Install is invoked once when the framework is registered and becomes
	// the active display target.
	Install() *kernel.Error

	// Uninstall is invoked when the framework stops being the active
	// display target.
	Uninstall() *kernel.Error

	// Enable asks the framework to start rendering output.
	Enable() *kernel.Error

	// Disable asks the framework to stop rendering output; the framework
	// may keep accepting writes (e.g. for mirroring) while disabled.
	Disable() *kernel.Error

	// Change hands the framework a new framebuffer to render into.
	Change(BufferInfo) *kernel.Error

	// Metadata returns the framework metadata.
	Metadata() (Metadata, *kernel.Error)
}

var (
	registryLock sync.Spinlock
	frameworks   []Framework
	current      Framework

	deviceBufLock sync.RWSpinlock
	deviceBuf     BufferInfo
	deviceBufSet  bool
)

// Register adds a UI framework to the screen manager. The first registered
// framework becomes the active display target: its Install and Enable
// callbacks are invoked before Register returns.
func Register(fw Framework) *kernel.Error {
	if fw == nil || fw.Name() == "" {
		return ErrInvalidFramework
	}

	registryLock.Acquire()
	for _, regFw := range frameworks {
		if regFw.Name() == fw.Name() {
			registryLock.Release()
			return ErrFrameworkRegistered
		}
	}

	frameworks = append(frameworks, fw)
	makeActive := current == nil
	if makeActive {
		current = fw
	}
	registryLock.Release()

	w := kfmt.PrefixWriter{Sink: kfmt.GetOutputSink(), Prefix: []byte("[screen] ")}
	kfmt.Fprintf(&w, "registered ui framework: %s\n", fw.Name())

	if !makeActive {
		return nil
	}

	if err := fw.Install(); err != nil {
		return err
	}

	return fw.Enable()
}

// ActiveFramework returns the framework currently driving the display, or an
// error when none has been registered.
func ActiveFramework() (Framework, *kernel.Error) {
	registryLock.Acquire()
	defer registryLock.Release()

	if current == nil {
		return nil, ErrNoFramework
	}
	return current, nil
}

// ChangeBuffer hands the active framework a new framebuffer, e.g. after a
// display mode switch. The boot framebuffer record is updated as well so that
// later framework registrations observe the new buffer.
func ChangeBuffer(info BufferInfo) *kernel.Error {
	SetDeviceBuffer(info)

	registryLock.Acquire()
	fw := current
	registryLock.Release()

	if fw == nil {
		return ErrNoFramework
	}
	return fw.Change(info)
}

// SetDeviceBuffer records the framebuffer handed over by the bootloader. It
// is invoked by the boot code before any UI framework initializes.
func SetDeviceBuffer(info BufferInfo) {
	deviceBufLock.Acquire()
	deviceBuf = info
	deviceBufSet = true
	deviceBufLock.Release()
}

// DeviceBuffer returns the framebuffer recorded by the boot code. The second
// return value reports whether a framebuffer has been recorded at all.
func DeviceBuffer() (BufferInfo, bool) {
	deviceBufLock.RAcquire()
	defer deviceBufLock.RRelease()

	return deviceBuf, deviceBufSet
}
