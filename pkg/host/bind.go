package host

import "sync"

var (
	bindMu sync.RWMutex
	bound  Host
)

// Set binds the host implementation used by the toolkit. It is called once
// during startup by the embedding application, and by test helpers to install
// a fake.
func Set(h Host) {
	bindMu.Lock()
	bound = h
	bindMu.Unlock()
}

// Current returns the bound host, or ErrHostUnavailable if none is bound.
func Current() (Host, error) {
	bindMu.RLock()
	h := bound
	bindMu.RUnlock()
	if h == nil {
		return nil, ErrHostUnavailable
	}
	return h, nil
}

// CurrentWindowHost returns the bound host's window surface.
func CurrentWindowHost() (WindowHost, error) {
	h, err := Current()
	if err != nil {
		return nil, err
	}
	wh, ok := h.(WindowHost)
	if !ok {
		return nil, ErrWindowUnsupported
	}
	return wh, nil
}

// CurrentEventHost returns the bound host's event surface.
func CurrentEventHost() (EventHost, error) {
	h, err := Current()
	if err != nil {
		return nil, err
	}
	eh, ok := h.(EventHost)
	if !ok {
		return nil, ErrEventUnsupported
	}
	return eh, nil
}
