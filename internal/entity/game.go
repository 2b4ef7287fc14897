package entity

import "time"

// Position addresses a cell, (0, 0) is the top left corner.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameResult is the record of a finished game.
type GameResult struct {
	ID         string     `json:"id"`
	Winner     string     `json:"winner"`
	MoveCount  int        `json:"move_count"`
	Moves      []Position `json:"moves"`
	Board      string     `json:"board"`
	FinishedAt time.Time  `json:"finished_at"`
}
