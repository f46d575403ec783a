// Package minefield implements the Minesweeper board: bomb placement, the adjacent-mine overlay,
// cursor movement, flagging and the breadth-first reveal cascade.
//
// The board is single-owner state. Nothing here blocks or performs I/O; callers drive it one
// Command at a time and stop once a terminal GameResult is returned.
package minefield
