package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lromero/pongcore/internal/game"
)

// ArrowDirection converts arrow keys to a movement direction.
// Arrows steer the right paddle in two-human games.
func ArrowDirection(key tcell.Key) game.Direction {
	switch key {
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyDown:
		return game.DirDown
	}
	return game.DirNone
}

// WASDDirection converts w/s runes to a movement direction.
// These steer the left paddle in two-human games.
func WASDDirection(r rune) game.Direction {
	switch r {
	case 'w', 'W':
		return game.DirUp
	case 's', 'S':
		return game.DirDown
	}
	return game.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsPauseKey returns true if the key should toggle pause
func IsPauseKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'p' || r == 'P' || r == ' ')
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}
