package textui

import "github.com/Vitus213/DragonOS/kernel"

var (
	// ErrAlreadyInitialized is returned when Init is invoked a second
	// time. The console is a process-wide singleton.
	ErrAlreadyInitialized = &kernel.Error{Module: "textui", Message: "console already initialized"}

	// ErrNotInitialized is returned by operations that require the console
	// singleton before Init has completed.
	ErrNotInitialized = &kernel.Error{Module: "textui", Message: "console not initialized"}

	// ErrInvalidArgument is returned when a line or column address falls
	// outside the window bounds. Failed checks occur before any state is
	// mutated.
	ErrInvalidArgument = &kernel.Error{Module: "textui", Message: "line or column out of range"}

	// ErrUnsupportedWindowMode is returned when output is directed at a
	// window without the chromatic flag; plain text rendering is not
	// implemented.
	ErrUnsupportedWindowMode = &kernel.Error{Module: "textui", Message: "plain text windows not supported"}
)
