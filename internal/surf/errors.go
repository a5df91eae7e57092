package surf

import "errors"

// ErrMissingMainScreen is returned when split mode is active (or requested)
// but no screen is registered under MainScreenName. This is a configuration
// mistake by the screen author, not a transient condition: the container
// halts instead of silently falling back to stack mode.
var ErrMissingMainScreen = errors.New("split layout requires a screen named \"" + MainScreenName + "\"")

// ErrUnknownScreen is returned when a navigation action names a screen that
// was never registered.
var ErrUnknownScreen = errors.New("screen is not registered")
