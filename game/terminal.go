package game

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sweeper/core"
)

// TerminalService owns the tcell screen for the process lifetime
type TerminalService struct {
	mu      sync.Mutex
	screen  tcell.Screen
	running bool
}

// NewTerminalService creates the service; the screen is created in Init
func NewTerminalService() *TerminalService {
	return &TerminalService{}
}

// Name implements service.Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: tcell.Screen (optional, defaults to tcell.NewScreen())
func (s *TerminalService) Init(args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(args) > 0 {
		if scr, ok := args[0].(tcell.Screen); ok {
			s.screen = scr
			return nil
		}
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	s.screen = scr
	return nil
}

// Start implements service.Service; puts the terminal in raw mode and arms crash recovery
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.screen == nil {
		return fmt.Errorf("terminal not initialized")
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterScreen(s.screen)
	s.running = true
	return nil
}

// Stop implements service.Service; restores the terminal
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	core.RegisterScreen(nil)
	s.screen.Fini()
	return nil
}

// Screen returns the managed screen, nil before Init
func (s *TerminalService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}
