package audio

import "log"

// ServiceName is the hub key of the SoundManager
const ServiceName = "audio"

// Name implements service.Service
func (sm *SoundManager) Name() string {
	return ServiceName
}

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool muted (optional)
func (sm *SoundManager) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			sm.SetMuted(muted)
		}
	}
	return nil
}

// Start implements service.Service; a muted manager never opens the device and a missing
// device leaves it silent
func (sm *SoundManager) Start() error {
	sm.mu.Lock()
	muted := sm.muted
	sm.mu.Unlock()
	if muted {
		log.Printf("audio muted, device not opened")
		return nil
	}

	if err := sm.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v", err)
	}
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}

// Active reports whether the device opened
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
